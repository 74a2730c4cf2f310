package commands_test

import (
	"testing"

	"orderchat/internal/core/application/usecases/commands"
	"orderchat/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	details := order.Details{
		Item:         "bread, milk",
		Qty:          3,
		CustomerName: "Alice",
	}
	cmd, err := commands.NewCreateOrderCommand(details)
	require.NoError(t, err)
	assert.Equal(t, details, cmd.Details())
}

func TestNewCreateOrderCommand_MissingItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.Details{Qty: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemIsRequired)
}

func TestNewCreateOrderCommand_BlankItem(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.Details{Item: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemIsRequired)
}

func TestCreateOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.Error(t, cmd.Validate())
}
