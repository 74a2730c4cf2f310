// Package extraction turns a creation utterance into structured order details.
// A configured model backend gets one shot at structured output; anything that
// goes wrong degrades silently to deterministic defaults, so callers always
// receive usable details and never see backend failures.
package extraction

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orderchat/internal/core/application/conversation"
	"orderchat/internal/core/domain/model/order"
	"orderchat/internal/core/ports"
)

// Temperature for extraction calls. Kept low: the model is filling a form,
// not chatting.
const extractionTemperature = 0.1

const systemPrompt = `You extract delivery order fields from a user message.
Respond with a single JSON object and nothing else, using exactly these keys:
customerName, address, item, qty, pickupTime, assignedTo, status, trackingId, amount, expenses.
Use null for anything the message does not mention. qty, amount and expenses are numbers.
pickupTime is an absolute timestamp in RFC 3339 format.`

// pickupTimeLayouts are tried in order when the model returns a timestamp.
var pickupTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Extractor produces order.Details from free text, using a chat backend when
// one is configured and deterministic defaults otherwise.
type Extractor struct {
	client ports.ChatClient
	logger *slog.Logger
}

// NewExtractor creates an extractor. A nil client is valid and means every
// extraction uses the deterministic defaults.
func NewExtractor(client ports.ChatClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		client: client,
		logger: logger,
	}
}

// OrderDetails extracts structured fields from a creation utterance.
// The returned details always carry a non-empty item and the standard
// defaults for qty, amount, and expenses, whether the model helped or not.
func (e *Extractor) OrderDetails(ctx context.Context, text string) order.Details {
	fallback := deterministicDetails(text)

	if e.client == nil {
		return fallback
	}

	messages := []ports.ChatMessage{
		{Role: conversation.RoleSystem, Content: systemPrompt},
		{Role: conversation.RoleUser, Content: text},
	}

	reply, err := e.client.Complete(ctx, messages, extractionTemperature)
	if err != nil {
		e.logger.Warn("order extraction failed, using deterministic defaults", "error", err)
		return fallback
	}

	payload, ok := firstJSONObject(reply)
	if !ok {
		e.logger.Warn("order extraction returned no JSON object, using deterministic defaults")
		return fallback
	}

	var fields map[string]any
	if err = json.Unmarshal([]byte(payload), &fields); err != nil {
		e.logger.Warn("order extraction returned malformed JSON, using deterministic defaults", "error", err)
		return fallback
	}

	return mergeFields(fallback, fields)
}

// deterministicDetails is the no-model extraction: the raw utterance becomes
// the item and every numeric field takes its default.
func deterministicDetails(text string) order.Details {
	return order.Details{
		Item:     strings.TrimSpace(text),
		Qty:      order.DefaultQty,
		Amount:   order.DefaultAmount,
		Expenses: order.DefaultExpenses,
	}
}

// mergeFields overlays model output on the deterministic defaults. Absent or
// falsy values keep the default; the item falls back to the raw utterance so
// an order is always creatable.
func mergeFields(base order.Details, fields map[string]any) order.Details {
	if v := stringField(fields, "customerName"); v != "" {
		base.CustomerName = v
	}
	if v := stringField(fields, "address"); v != "" {
		base.Address = v
	}
	if v := stringField(fields, "item"); v != "" {
		base.Item = v
	}
	if v := stringField(fields, "assignedTo"); v != "" {
		base.AssignedTo = v
	}
	if qty, ok := intField(fields, "qty"); ok && qty >= 1 {
		base.Qty = qty
	}
	if amount, ok := floatField(fields, "amount"); ok && amount != 0 {
		base.Amount = amount
	}
	if expenses, ok := floatField(fields, "expenses"); ok && expenses != 0 {
		base.Expenses = expenses
	}
	if raw := stringField(fields, "pickupTime"); raw != "" {
		for _, layout := range pickupTimeLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				base.PickupTime = &t
				break
			}
		}
	}

	return base
}

// firstJSONObject returns the first balanced top-level {...} block in s,
// tolerating model commentary around it. Brace counting is enough here: the
// extraction keys never contain braces, and a brace inside a quoted value
// merely splits the block early, which parsing then rejects and the caller
// treats as a fallback.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func intField(fields map[string]any, key string) (int, bool) {
	switch v := fields[key].(type) {
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func floatField(fields map[string]any, key string) (float64, bool) {
	switch v := fields[key].(type) {
	case float64:
		return v, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
