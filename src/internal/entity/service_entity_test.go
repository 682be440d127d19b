package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRecord(t *testing.T) {
	r := NewServiceRecord(epoch)
	assert.Equal(t, "2026-08-28", r.DischargeDate)
	// 2026-03-01 09:00 -> 2026-08-28 00:00 is 179 days and 15 hours
	assert.Equal(t, 180, r.DaysRemaining(epoch))

	_, err := r.SetDischargeDate("someday")
	require.ErrorIs(t, err, ErrInvalidDate)

	r, err = r.SetDischargeDate("2026-03-03")
	require.NoError(t, err)
	assert.Equal(t, 2, r.DaysRemaining(epoch))
	assert.Equal(t, 0, r.DaysRemaining(epoch.Add(5*24*time.Hour)))
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2026-03-05", FormatDate(d))
	_, err = ParseDate("2026/03/05")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
