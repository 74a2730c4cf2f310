package extraction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderchat/internal/core/application/extraction"
	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChatClient returns a canned reply or error and records the last call.
type fakeChatClient struct {
	reply string
	err   error

	lastMessages    []ports.ChatMessage
	lastTemperature float64
}

func (f *fakeChatClient) Complete(_ context.Context, messages []ports.ChatMessage, temperature float64) (string, error) {
	f.lastMessages = messages
	f.lastTemperature = temperature
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestOrderDetails_NoClient_UsesDeterministicDefaults(t *testing.T) {
	e := extraction.NewExtractor(nil, nil)

	details := e.OrderDetails(t.Context(), "  2 loaves of bread to 12 Baker St  ")

	assert.Equal(t, "2 loaves of bread to 12 Baker St", details.Item)
	assert.Equal(t, order.DefaultQty, details.Qty)
	assert.InDelta(t, order.DefaultAmount, details.Amount, 0.001)
	assert.InDelta(t, order.DefaultExpenses, details.Expenses, 0.001)
	assert.Nil(t, details.PickupTime)
}

func TestOrderDetails_ModelOutput_OverridesDefaults(t *testing.T) {
	client := &fakeChatClient{reply: `{
		"customerName": "Alice",
		"address": "12 Baker St",
		"item": "bread, milk",
		"qty": 2,
		"pickupTime": "2026-03-14T09:00:00Z",
		"assignedTo": "John",
		"status": null,
		"trackingId": null,
		"amount": 350,
		"expenses": 80
	}`}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "2 loaves of bread and milk for Alice")

	assert.Equal(t, "Alice", details.CustomerName)
	assert.Equal(t, "12 Baker St", details.Address)
	assert.Equal(t, "bread, milk", details.Item)
	assert.Equal(t, 2, details.Qty)
	assert.Equal(t, "John", details.AssignedTo)
	assert.InDelta(t, 350.0, details.Amount, 0.001)
	assert.InDelta(t, 80.0, details.Expenses, 0.001)
	require.NotNil(t, details.PickupTime)
	assert.True(t, details.PickupTime.Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
}

func TestOrderDetails_ToleratesCommentaryAroundJSON(t *testing.T) {
	client := &fakeChatClient{reply: "Sure, here are the fields:\n" +
		`{"item": "bread", "qty": 3}` +
		"\nLet me know if you need anything else."}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "three loaves of bread")

	assert.Equal(t, "bread", details.Item)
	assert.Equal(t, 3, details.Qty)
}

func TestOrderDetails_CoercesNumericStrings(t *testing.T) {
	client := &fakeChatClient{reply: `{"item": "bread", "qty": "4", "amount": "275.5"}`}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "bread")

	assert.Equal(t, 4, details.Qty)
	assert.InDelta(t, 275.5, details.Amount, 0.001)
}

func TestOrderDetails_BadValuesKeepDefaults(t *testing.T) {
	client := &fakeChatClient{reply: `{"item": "", "qty": "a few", "amount": 0, "pickupTime": "tomorrow"}`}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "some bread")

	assert.Equal(t, "some bread", details.Item)
	assert.Equal(t, order.DefaultQty, details.Qty)
	assert.InDelta(t, order.DefaultAmount, details.Amount, 0.001)
	assert.Nil(t, details.PickupTime)
}

func TestOrderDetails_BackendError_FallsBackSilently(t *testing.T) {
	client := &fakeChatClient{err: errors.New("backend unavailable")}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "bread")

	assert.Equal(t, "bread", details.Item)
	assert.Equal(t, order.DefaultQty, details.Qty)
}

func TestOrderDetails_NoJSONInReply_FallsBack(t *testing.T) {
	client := &fakeChatClient{reply: "I could not find any order details."}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "bread")

	assert.Equal(t, "bread", details.Item)
}

func TestOrderDetails_MalformedJSON_FallsBack(t *testing.T) {
	client := &fakeChatClient{reply: `{"item": "bread", "qty":}`}
	e := extraction.NewExtractor(client, nil)

	details := e.OrderDetails(t.Context(), "bread")

	assert.Equal(t, "bread", details.Item)
	assert.Equal(t, order.DefaultQty, details.Qty)
}

func TestOrderDetails_SendsSystemInstructionAndUserText(t *testing.T) {
	client := &fakeChatClient{reply: `{"item": "bread"}`}
	e := extraction.NewExtractor(client, nil)

	e.OrderDetails(t.Context(), "two loaves of bread")

	require.Len(t, client.lastMessages, 2)
	assert.Equal(t, "system", client.lastMessages[0].Role)
	assert.Contains(t, client.lastMessages[0].Content, "trackingId")
	assert.Equal(t, "user", client.lastMessages[1].Role)
	assert.Equal(t, "two loaves of bread", client.lastMessages[1].Content)
	assert.Less(t, client.lastTemperature, 0.5)
}
