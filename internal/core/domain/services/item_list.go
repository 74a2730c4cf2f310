package services

import (
	"regexp"
	"strings"
)

// The add/remove sub-parser: an update utterance may append items ("add juice
// and eggs") and drop items ("remove bread") in the same sentence. Each segment
// starts after its keyword and is truncated before the next control keyword so
// that trailing clauses ("... and status shipped") do not leak into the list.
var (
	addKeywordPattern    = regexp.MustCompile(`(?i)\badd\b`)
	removeKeywordPattern = regexp.MustCompile(`(?i)\bremove\b`)
	afterAddStopPattern  = regexp.MustCompile(`(?i)\b(?:remove|status|assign|pickup)\b`)
	afterRemoveStop      = regexp.MustCompile(`(?i)\b(?:add|status|assign|pickup)\b`)
	itemSeparatorPattern = regexp.MustCompile(`(?i)\s*,\s*|\s+and\s+`)
)

// ParseAddedItems returns the items named after the first "add" keyword,
// truncated before the next control keyword and split on commas and "and".
func ParseAddedItems(text string) []string {
	return parseItemSegment(text, addKeywordPattern, afterAddStopPattern)
}

// ParseRemovedItems returns the items named after the first "remove" keyword,
// with logic symmetric to ParseAddedItems.
func ParseRemovedItems(text string) []string {
	return parseItemSegment(text, removeKeywordPattern, afterRemoveStop)
}

func parseItemSegment(text string, keyword, stop *regexp.Regexp) []string {
	loc := keyword.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	segment := text[loc[1]:]
	if stopLoc := stop.FindStringIndex(segment); stopLoc != nil {
		segment = segment[:stopLoc[0]]
	}

	parts := itemSeparatorPattern.Split(segment, -1)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		items = append(items, p)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
