package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"orderchat/internal/core/domain/model/kernel"
	"orderchat/internal/core/domain/model/order"
)

var (
	trackingIDTokenPattern = regexp.MustCompile(`(?i)\bord-[a-z0-9]+\b`)
	cancelIDPattern        = regexp.MustCompile(`(?i)\bcancel\s+order\s+([a-z0-9-]+)`)
	statusKeywordPattern   = regexp.MustCompile(`(?i)\b(delivered|processing|shipped)\b`)
	assigneePattern        = regexp.MustCompile(`(?i)\bassign(?:\s+to)?\s+(.+)`)
	pickupTimePattern      = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	pickupTokenPattern     = regexp.MustCompile(`(?i)\bpickup\b`)
)

// ExtractTrackingID finds the first ORD-<alnum> token anywhere in the text and
// returns it normalized to upper case. Extraction is idempotent: feeding a
// previously extracted id back in yields the same value.
func ExtractTrackingID(text string) (kernel.TrackingID, bool) {
	token := trackingIDTokenPattern.FindString(text)
	if token == "" {
		return kernel.TrackingID{}, false
	}
	id, err := kernel.TrackingIDFromString(token)
	if err != nil {
		return kernel.TrackingID{}, false
	}
	return id, true
}

// ExtractTrackingIDWithRemainder finds the first ORD-<alnum> token and also
// returns the text following it, with an optional leading "to", "is", or ":"
// stripped. The address update path reads its new address from that remainder.
func ExtractTrackingIDWithRemainder(text string) (kernel.TrackingID, string, bool) {
	loc := trackingIDTokenPattern.FindStringIndex(text)
	if loc == nil {
		return kernel.TrackingID{}, "", false
	}

	id, err := kernel.TrackingIDFromString(text[loc[0]:loc[1]])
	if err != nil {
		return kernel.TrackingID{}, "", false
	}

	remainder := strings.TrimSpace(text[loc[1]:])
	remainder = strings.TrimPrefix(remainder, ":")
	lowered := strings.ToLower(remainder)
	for _, lead := range []string{"to ", "is "} {
		if strings.HasPrefix(lowered, lead) {
			remainder = remainder[len(lead):]
			break
		}
	}
	return id, strings.TrimSpace(remainder), true
}

// ExtractCancelID captures the id token embedded in a "cancel order <id>"
// phrase. Unlike ExtractTrackingID it accepts any alphanumeric token, so the
// not-found path can report whatever the user actually typed.
func ExtractCancelID(text string) (string, bool) {
	m := cancelIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractStatus returns the first whole-word status keyword
// (delivered, processing, shipped) found in the text.
func ExtractStatus(text string) (order.Status, bool) {
	m := statusKeywordPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return order.Status(strings.ToLower(m[1])), true
}

// ExtractAssignee returns the text following the first "assign" or "assign to"
// token, trimmed. The remainder is taken verbatim; only item lists truncate at
// control keywords.
func ExtractAssignee(text string) (string, bool) {
	m := assigneePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	assignee := strings.TrimSpace(m[1])
	if assignee == "" {
		return "", false
	}
	return assignee, true
}

// ContainsPickupToken reports whether the text mentions "pickup" as a word.
// Pickup times are only extracted from update text that does.
func ContainsPickupToken(text string) bool {
	return pickupTokenPattern.MatchString(text)
}

// ExtractPickupTime parses an "H[:MM] am|pm" time-of-day from the text and
// anchors it to a concrete date: today if that time is still ahead of now,
// otherwise tomorrow. Hour 12 with "am" maps to midnight. Only a time-of-day
// can be specified; there is no date component.
func ExtractPickupTime(text string, now time.Time) (time.Time, bool) {
	m := pickupTimePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return time.Time{}, false
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return time.Time{}, false
		}
	}

	meridiem := strings.ToLower(m[3])
	if meridiem == "am" && hour == 12 {
		hour = 0
	}
	if meridiem == "pm" && hour < 12 {
		hour += 12
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate, true
}
