// Package id generates external identifiers for persisted records.
package id

import (
	"strings"

	"github.com/google/uuid"
)

// PrefixLength is the number of uuid characters used when an identifier is
// embedded in a filename (reason logs, transcripts).
const PrefixLength = 8

// NewTicketID returns a fresh random uuid string. This is the external
// reference for a ticket, used in transcripts and forwarding.
func NewTicketID() string {
	return uuid.NewString()
}

// ShortPrefix returns the leading segment of an identifier, suitable for
// building filenames. Identifiers shorter than PrefixLength are returned as-is.
func ShortPrefix(identifier string) string {
	trimmed := strings.TrimSpace(identifier)
	if len(trimmed) <= PrefixLength {
		return trimmed
	}
	return trimmed[:PrefixLength]
}
