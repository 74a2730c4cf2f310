package queries_test

import (
	"testing"

	"orderchat/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackOrderQuery_ValidInput(t *testing.T) {
	query, err := queries.NewTrackOrderQuery("  ORD-MB3K2F9XQ1AZ  ")
	require.NoError(t, err)
	assert.Equal(t, "ORD-MB3K2F9XQ1AZ", query.OrderID())
	require.NoError(t, query.Validate())
}

func TestNewTrackOrderQuery_BlankID(t *testing.T) {
	_, err := queries.NewTrackOrderQuery("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsRequired)
}

func TestParameterlessQueries_ValidateAfterConstruction(t *testing.T) {
	require.NoError(t, queries.NewNextPickupQuery().Validate())
	require.NoError(t, queries.NewListOrdersQuery().Validate())

	require.Error(t, queries.NextPickupQuery{}.Validate())
	require.Error(t, queries.ListOrdersQuery{}.Validate())
}
