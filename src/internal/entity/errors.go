package entity

import (
	"errors"
	"time"
)

// ErrInsufficientBalance is the only hard failure: a debit larger than the balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Rejections leave state untouched and are reported, not raised.
var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidRate          = errors.New("invalid rate")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidTransportMode = errors.New("invalid transport mode")
	ErrAlreadyMinted        = errors.New("already minted")
	ErrNotMinted            = errors.New("identity not minted")
	ErrNotFound             = errors.New("not found")
	ErrIllegalTransition    = errors.New("illegal transition")
	ErrUnknownProduct       = errors.New("unknown product")
	ErrNoTransport          = errors.New("transport not attached")
)

var rejections = []error{
	ErrInvalidAmount,
	ErrInvalidRate,
	ErrInvalidDate,
	ErrInvalidTransportMode,
	ErrAlreadyMinted,
	ErrNotMinted,
	ErrNotFound,
	ErrIllegalTransition,
	ErrUnknownProduct,
	ErrNoTransport,
}

// IsRejection reports whether err is a no-op outcome rather than a failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// Stamp is the identity and time a mutation is applied with.
type Stamp struct {
	ID string
	At time.Time
}

// DateLayout is the calendar date format used by leave, voucher and service dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
