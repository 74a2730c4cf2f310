package services_test

import (
	"testing"
	"time"

	"orderchat/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTrackingID(t *testing.T) {
	t.Run("finds and upper-cases the first token", func(t *testing.T) {
		id, ok := services.ExtractTrackingID("ship ord-abc123 now")

		require.True(t, ok)
		assert.Equal(t, "ORD-ABC123", id.String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, ok := services.ExtractTrackingID("ship ord-abc123 now")
		require.True(t, ok)

		second, ok := services.ExtractTrackingID(first.String())
		require.True(t, ok)
		assert.True(t, first.IsEqual(second))
	})

	t.Run("matches anywhere in the text", func(t *testing.T) {
		id, ok := services.ExtractTrackingID("update status shipped for ORD-9X")

		require.True(t, ok)
		assert.Equal(t, "ORD-9X", id.String())
	})

	t.Run("no token", func(t *testing.T) {
		_, ok := services.ExtractTrackingID("no ids here")
		assert.False(t, ok)
	})
}

func TestExtractTrackingIDWithRemainder(t *testing.T) {
	t.Run("strips leading to", func(t *testing.T) {
		id, remainder, ok := services.ExtractTrackingIDWithRemainder(
			"update address of ORD-1 to 45 Elm Road")

		require.True(t, ok)
		assert.Equal(t, "ORD-1", id.String())
		assert.Equal(t, "45 Elm Road", remainder)
	})

	t.Run("strips leading is", func(t *testing.T) {
		_, remainder, ok := services.ExtractTrackingIDWithRemainder(
			"address for ord-1 is 9 Hill St")

		require.True(t, ok)
		assert.Equal(t, "9 Hill St", remainder)
	})

	t.Run("strips leading colon", func(t *testing.T) {
		_, remainder, ok := services.ExtractTrackingIDWithRemainder("ORD-1: 9 Hill St")

		require.True(t, ok)
		assert.Equal(t, "9 Hill St", remainder)
	})

	t.Run("empty remainder when nothing follows", func(t *testing.T) {
		_, remainder, ok := services.ExtractTrackingIDWithRemainder("update address of ORD-1")

		require.True(t, ok)
		assert.Empty(t, remainder)
	})

	t.Run("no token", func(t *testing.T) {
		_, _, ok := services.ExtractTrackingIDWithRemainder("update my address to 9 Hill St")
		assert.False(t, ok)
	})
}

func TestExtractCancelID(t *testing.T) {
	t.Run("captures token after cancel order", func(t *testing.T) {
		id, ok := services.ExtractCancelID("cancel order ORD-123")

		require.True(t, ok)
		assert.Equal(t, "ORD-123", id)
	})

	t.Run("accepts non-ORD tokens", func(t *testing.T) {
		id, ok := services.ExtractCancelID("cancel order 12345")

		require.True(t, ok)
		assert.Equal(t, "12345", id)
	})

	t.Run("missing id", func(t *testing.T) {
		_, ok := services.ExtractCancelID("cancel order")
		assert.False(t, ok)
	})
}

func TestExtractStatus(t *testing.T) {
	t.Run("matches whole-word status keywords", func(t *testing.T) {
		status, ok := services.ExtractStatus("mark it Shipped please")

		require.True(t, ok)
		assert.Equal(t, "shipped", status.String())
	})

	t.Run("first match wins", func(t *testing.T) {
		status, ok := services.ExtractStatus("delivered not processing")

		require.True(t, ok)
		assert.Equal(t, "delivered", status.String())
	})

	t.Run("no partial matches", func(t *testing.T) {
		_, ok := services.ExtractStatus("reprocessing the backlog")
		assert.False(t, ok)
	})

	t.Run("no keyword", func(t *testing.T) {
		_, ok := services.ExtractStatus("update ORD-1")
		assert.False(t, ok)
	})
}

func TestExtractAssignee(t *testing.T) {
	t.Run("text after assign to", func(t *testing.T) {
		name, ok := services.ExtractAssignee("update ORD-1 assign to Ravi Kumar")

		require.True(t, ok)
		assert.Equal(t, "Ravi Kumar", name)
	})

	t.Run("text after bare assign", func(t *testing.T) {
		name, ok := services.ExtractAssignee("assign Priya")

		require.True(t, ok)
		assert.Equal(t, "Priya", name)
	})

	t.Run("no assign token", func(t *testing.T) {
		_, ok := services.ExtractAssignee("update ORD-1 status shipped")
		assert.False(t, ok)
	})
}

func TestExtractPickupTime(t *testing.T) {
	loc := time.UTC

	t.Run("future time stays today", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)

		got, ok := services.ExtractPickupTime("5 pm", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 1, 17, 0, 0, 0, loc), got)
	})

	t.Run("past time rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 18, 30, 0, 0, loc)

		got, ok := services.ExtractPickupTime("5 pm", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 2, 17, 0, 0, 0, loc), got)
	})

	t.Run("exact boundary rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 17, 0, 0, 0, loc)

		got, ok := services.ExtractPickupTime("5pm", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 2, 17, 0, 0, 0, loc), got)
	})

	t.Run("minutes are honored", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)

		got, ok := services.ExtractPickupTime("pickup at 10:45 am", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 45, 0, 0, loc), got)
	})

	t.Run("12 am maps to midnight", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)

		got, ok := services.ExtractPickupTime("12 am", now)

		require.True(t, ok)
		// 00:00 has already passed, so it lands on tomorrow.
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), got)
	})

	t.Run("12 pm maps to noon", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 9, 0, 0, 0, loc)

		got, ok := services.ExtractPickupTime("12pm", now)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, loc), got)
	})

	t.Run("no time in text", func(t *testing.T) {
		_, ok := services.ExtractPickupTime("sometime soon", time.Now())
		assert.False(t, ok)
	})
}

func TestContainsPickupToken(t *testing.T) {
	assert.True(t, services.ContainsPickupToken("set pickup to 5 pm"))
	assert.True(t, services.ContainsPickupToken("Pickup at noon"))
	assert.False(t, services.ContainsPickupToken("pick up the pace"))
}
