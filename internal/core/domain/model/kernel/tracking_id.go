package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"orderchat/internal/pkg/errs"
)

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not properly initialized
// through one of the constructor functions. This error is returned when validating a
// zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via NewTrackingID or TrackingIDFromString",
)

const (
	trackingIDPrefix    = "ORD-"
	trackingIDRandomLen = 6
	base36Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var trackingIDPattern = regexp.MustCompile(`^ORD-[A-Z0-9]+$`)

// TrackingID is a value object that represents the human-facing order identifier.
// The format is "ORD-<base36 timestamp><6 random uppercase base36 characters>",
// for example "ORD-MB3K2F9XQ1AZ". A TrackingID is assigned exactly once when an
// order is created and never mutated afterwards. Uniqueness is by convention:
// the millisecond timestamp plus six random characters make collisions
// vanishingly unlikely, and no store-level uniqueness constraint backs it up.
//
// The zero value of TrackingID is invalid and must be constructed using
// NewTrackingID or TrackingIDFromString.
type TrackingID struct {
	value string
}

// NewTrackingID generates a fresh tracking identifier for the given creation time.
// The timestamp component is the Unix millisecond time encoded in upper-case
// base36, followed by six random characters from the same alphabet.
//
// Example:
//
//	id := kernel.NewTrackingID(time.Now())
//	fmt.Println(id.String()) // e.g. "ORD-MB3K2F97G2XQ1A"
func NewTrackingID(now time.Time) TrackingID {
	var b strings.Builder
	b.WriteString(trackingIDPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	for range trackingIDRandomLen {
		b.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}
	return TrackingID{value: b.String()}
}

// TrackingIDFromString parses and normalizes a tracking identifier taken from
// user input or persistence. Input is trimmed and upper-cased before validation,
// so "ord-abc123" and "ORD-ABC123" denote the same identifier.
//
// Returns an error if the normalized value does not match ^ORD-[A-Z0-9]+$.
func TrackingIDFromString(s string) (TrackingID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !trackingIDPattern.MatchString(normalized) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("%q does not match the ORD-<alnum> format", s),
		)
	}
	return TrackingID{value: normalized}, nil
}

// String returns the canonical upper-case representation of the tracking identifier.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identifiers for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks if the TrackingID is properly constructed.
// Returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
