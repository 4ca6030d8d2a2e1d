// Package checkout contains the leave-of-absence record and its storage contract.
package checkout

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date form members type into the form.
const DateLayout = "02/01/2006"

// MaxReasonLength bounds the free-text reason.
const MaxReasonLength = 200

var (
	// ErrInvalidDate is returned when the duration does not parse as dd/mm/yyyy.
	ErrInvalidDate = errors.New("invalid date, expected dd/mm/yyyy")
	// ErrDateNotFuture is returned for dates that are today or earlier.
	ErrDateNotFuture = errors.New("date must be in the future")
)

// Checkout is a recorded leave-of-absence with an expiry date. The duration
// string is persisted verbatim; expiry is defined as duration <= now.
type Checkout struct {
	userID   string
	reason   string
	duration string
}

// NewCheckout validates the form input. The date must parse and lie strictly
// in the future relative to now.
func NewCheckout(userID, reason, duration string, now time.Time) (*Checkout, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if reason == "" {
		return nil, fmt.Errorf("reason is required")
	}
	if len(reason) > MaxReasonLength {
		return nil, fmt.Errorf("reason exceeds maximum length of %d characters", MaxReasonLength)
	}

	endDate, err := time.ParseInLocation(DateLayout, duration, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !endDate.After(startOfDay(now)) {
		return nil, ErrDateNotFuture
	}

	return &Checkout{
		userID:   userID,
		reason:   reason,
		duration: duration,
	}, nil
}

// Reconstruct rebuilds a checkout from its stored row without re-validating
// the date against the current time.
func Reconstruct(userID, reason, duration string) *Checkout {
	return &Checkout{
		userID:   userID,
		reason:   reason,
		duration: duration,
	}
}

func (c *Checkout) UserID() string   { return c.userID }
func (c *Checkout) Reason() string   { return c.reason }
func (c *Checkout) Duration() string { return c.duration }

// EndDate parses the stored duration. Rows written through NewCheckout always
// parse; a malformed row is reported so the sweep can drop it.
func (c *Checkout) EndDate(loc *time.Location) (time.Time, error) {
	endDate, err := time.ParseInLocation(DateLayout, c.duration, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return endDate, nil
}

// Expired reports whether the stored end date has passed at the given time.
// The end date counts as expired on the day itself.
func (c *Checkout) Expired(now time.Time) bool {
	endDate, err := c.EndDate(now.Location())
	if err != nil {
		return true
	}
	return !endDate.After(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
