package services

import "regexp"

// Intent is the closed-set classification of a user utterance.
type Intent string

const (
	IntentCreateOrder   Intent = "create_order"
	IntentTrackOrder    Intent = "track_order"
	IntentNextPickup    Intent = "next_pickup"
	IntentListOrders    Intent = "list_orders"
	IntentCancelOrder   Intent = "cancel_order"
	IntentDeleteOrder   Intent = "delete_order"
	IntentUpdateAddress Intent = "update_address"
	IntentUpdateOrder   Intent = "update_order"
	IntentGeneral       Intent = "general"
)

// Classification is the result of classifying one utterance.
// TrackingID carries the raw id token captured by rules that embed one
// (e.g. "track order <id>"); it is not validated or normalized here.
type Classification struct {
	Intent     Intent
	TrackingID string
}

// intentRule binds one pattern to an intent. Rules are evaluated in order and
// the first match wins, so ordering encodes priority: specific multi-word
// triggers come before the permissive update catch-all. capturesID marks rules
// whose first capture group is a tracking id candidate.
type intentRule struct {
	intent     Intent
	pattern    *regexp.Regexp
	capturesID bool
}

// IntentClassifier maps raw text to an intent via an ordered rule table.
type IntentClassifier struct {
	rules []intentRule
}

// NewIntentClassifier creates a classifier with the standard rule table.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		rules: []intentRule{
			{
				intent:  IntentCreateOrder,
				pattern: regexp.MustCompile(`(?i)\b(?:create|place|new|add)\s+(?:an?\s+)?order\b|\bi\s+want\s+to\s+order\b`),
			},
			{
				intent:     IntentTrackOrder,
				pattern:    regexp.MustCompile(`(?i)\b(?:track\s+order|where\s+is\s+(?:my\s+)?order)\s+([A-Za-z0-9-]+)`),
				capturesID: true,
			},
			{
				intent:  IntentNextPickup,
				pattern: regexp.MustCompile(`(?i)\bnext\s+(?:pickup|delivery|order)\b`),
			},
			{
				intent:  IntentListOrders,
				pattern: regexp.MustCompile(`(?i)\b(?:list|show)\s+(?:all\s+|my\s+|recent\s+)?orders\b|\brecent\s+orders\b`),
			},
			{
				intent:  IntentCancelOrder,
				pattern: regexp.MustCompile(`(?i)\bcancel\s+order\b`),
			},
			{
				intent:  IntentDeleteOrder,
				pattern: regexp.MustCompile(`(?i)\b(?:delete|remove)\s+order\b`),
			},
			{
				intent:  IntentUpdateAddress,
				pattern: regexp.MustCompile(`(?i)\b(?:add|update)\s+(?:the\s+|my\s+)?address\b`),
			},
			{
				// Most permissive rule; must stay last before the general fallback.
				intent:  IntentUpdateOrder,
				pattern: regexp.MustCompile(`(?i)\b(?:update|modify|change)\b`),
			},
		},
	}
}

// Classify evaluates the rule table against the input and returns the first
// matching intent, or IntentGeneral when nothing matches.
func (c *IntentClassifier) Classify(text string) Classification {
	for _, rule := range c.rules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		result := Classification{Intent: rule.intent}
		if rule.capturesID && len(m) > 1 {
			result.TrackingID = m[1]
		}
		return result
	}
	return Classification{Intent: IntentGeneral}
}
