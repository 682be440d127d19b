package entity

import (
	"math"
	"time"
)

const defaultServiceDays = 180

type ServiceRecord struct {
	DischargeDate string `json:"dischargeDate"`
}

func NewServiceRecord(now time.Time) ServiceRecord {
	return ServiceRecord{DischargeDate: FormatDate(now.AddDate(0, 0, defaultServiceDays))}
}

func (r ServiceRecord) SetDischargeDate(date string) (ServiceRecord, error) {
	if _, err := ParseDate(date); err != nil {
		return r, err
	}
	r.DischargeDate = date
	return r, nil
}

// DaysRemaining counts whole days until discharge, rounding up; never negative.
func (r ServiceRecord) DaysRemaining(now time.Time) int {
	target, err := ParseDate(r.DischargeDate)
	if err != nil {
		return 0
	}
	days := math.Ceil(target.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
