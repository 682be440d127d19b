package entity

import (
	"time"

	"wallet-service/src/pkg/token"
)

type VoucherStatus string

const (
	VoucherRequested VoucherStatus = "requested"
	VoucherApproved  VoucherStatus = "approved"
	VoucherPrinted   VoucherStatus = "printed"
	VoucherUsed      VoucherStatus = "used"
	VoucherCancelled VoucherStatus = "cancelled"
	VoucherExpired   VoucherStatus = "expired"
	VoucherDestroyed VoucherStatus = "destroyed"
)

var VoucherStatuses = []VoucherStatus{
	VoucherRequested, VoucherApproved, VoucherPrinted, VoucherUsed,
	VoucherCancelled, VoucherExpired, VoucherDestroyed,
}

// Directed edges only; used, cancelled and destroyed are terminal.
var voucherTransitions = map[VoucherStatus][]VoucherStatus{
	VoucherRequested: {VoucherApproved, VoucherCancelled},
	VoucherApproved:  {VoucherPrinted, VoucherCancelled},
	VoucherPrinted:   {VoucherUsed, VoucherExpired, VoucherDestroyed},
	VoucherExpired:   {VoucherDestroyed},
}

func CanTransitionVoucher(from, to VoucherStatus) bool {
	for _, s := range voucherTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// VoucherExpiryGrace is how long after the departure date a printed voucher stays valid.
const VoucherExpiryGrace = 24 * time.Hour

type VoucherDraft struct {
	Mode        TransportMode `json:"mode"`
	RoundTrip   bool          `json:"roundTrip"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	DepartDate  string        `json:"departDate"`
	ReturnDate  string        `json:"returnDate,omitempty"`
}

type Voucher struct {
	ID                 string        `json:"id"`
	Mode               TransportMode `json:"mode"`
	RoundTrip          bool          `json:"roundTrip"`
	Origin             string        `json:"origin"`
	Destination        string        `json:"destination"`
	DepartDate         string        `json:"departDate"`
	ReturnDate         string        `json:"returnDate,omitempty"`
	Status             VoucherStatus `json:"status"`
	ImmutablePrintHash string        `json:"immutablePrintHash,omitempty"`
	OfficerName        string        `json:"officerName,omitempty"`
	OfficerContact     string        `json:"officerContact,omitempty"`
	HasSeal            bool          `json:"hasSeal,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	PrintedAt          *time.Time    `json:"printedAt,omitempty"`
}

// VoucherBook is every standalone voucher, newest first.
type VoucherBook struct {
	Vouchers []Voucher `json:"vouchers"`
}

func VoucherPrintHash(enc token.Encoder, id, departDate, origin, destination, officerName string) string {
	return enc.Encode(id, departDate, origin, destination, officerName)
}

func (b VoucherBook) find(id string) int {
	for i, v := range b.Vouchers {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (b VoucherBook) Get(id string) (Voucher, bool) {
	if i := b.find(id); i >= 0 {
		return b.Vouchers[i], true
	}
	return Voucher{}, false
}

func (b VoucherBook) Request(s Stamp, d VoucherDraft) (VoucherBook, Voucher, error) {
	if !d.Mode.Valid() {
		return b, Voucher{}, ErrInvalidTransportMode
	}
	if _, err := ParseDate(d.DepartDate); err != nil {
		return b, Voucher{}, err
	}
	v := Voucher{
		ID:          s.ID,
		Mode:        d.Mode,
		RoundTrip:   d.RoundTrip,
		Origin:      d.Origin,
		Destination: d.Destination,
		DepartDate:  d.DepartDate,
		ReturnDate:  d.ReturnDate,
		Status:      VoucherRequested,
		CreatedAt:   s.At,
		UpdatedAt:   s.At,
	}
	vouchers := make([]Voucher, 0, len(b.Vouchers)+1)
	vouchers = append(vouchers, v)
	vouchers = append(vouchers, b.Vouchers...)
	b.Vouchers = vouchers
	return b, v, nil
}

// transition checks the edge before mutating anything; an illegal request
// returns the book and voucher unchanged.
func (b VoucherBook) transition(id string, to VoucherStatus, at time.Time, also func(*Voucher)) (VoucherBook, Voucher, error) {
	i := b.find(id)
	if i < 0 {
		return b, Voucher{}, ErrNotFound
	}
	v := b.Vouchers[i]
	if !CanTransitionVoucher(v.Status, to) {
		return b, v, ErrIllegalTransition
	}
	v.Status = to
	v.UpdatedAt = later(v.UpdatedAt, at)
	if also != nil {
		also(&v)
	}
	vouchers := append([]Voucher(nil), b.Vouchers...)
	vouchers[i] = v
	b.Vouchers = vouchers
	return b, v, nil
}

// Approve stamps the officer and the seal.
func (b VoucherBook) Approve(id string, officer Officer, at time.Time) (VoucherBook, Voucher, error) {
	return b.transition(id, VoucherApproved, at, func(v *Voucher) {
		if officer.Name != "" {
			v.OfficerName = officer.Name
		}
		if officer.Contact != "" {
			v.OfficerContact = officer.Contact
		}
		v.HasSeal = true
	})
}

func (b VoucherBook) Print(enc token.Encoder, id string, at time.Time) (VoucherBook, Voucher, error) {
	return b.transition(id, VoucherPrinted, at, func(v *Voucher) {
		v.ImmutablePrintHash = VoucherPrintHash(enc, v.ID, v.DepartDate, v.Origin, v.Destination, v.OfficerName)
		printed := at
		v.PrintedAt = &printed
	})
}

func (b VoucherBook) MarkUsed(id string, at time.Time) (VoucherBook, Voucher, error) {
	return b.transition(id, VoucherUsed, at, nil)
}

func (b VoucherBook) Cancel(id string, at time.Time) (VoucherBook, Voucher, error) {
	return b.transition(id, VoucherCancelled, at, nil)
}

func (b VoucherBook) Destroy(id string, at time.Time) (VoucherBook, Voucher, error) {
	return b.transition(id, VoucherDestroyed, at, nil)
}

// ExpireSweep moves every printed voucher whose departure date is more than
// VoucherExpiryGrace in the past to expired. Vouchers with unparsable dates
// are left alone. Returns the ids that changed.
func (b VoucherBook) ExpireSweep(now time.Time) (VoucherBook, []string) {
	var expired []string
	var vouchers []Voucher
	for i, v := range b.Vouchers {
		if v.Status != VoucherPrinted {
			continue
		}
		depart, err := ParseDate(v.DepartDate)
		if err != nil || now.Sub(depart) <= VoucherExpiryGrace {
			continue
		}
		if vouchers == nil {
			vouchers = append([]Voucher(nil), b.Vouchers...)
		}
		v.Status = VoucherExpired
		v.UpdatedAt = later(v.UpdatedAt, now)
		vouchers[i] = v
		expired = append(expired, v.ID)
	}
	if vouchers != nil {
		b.Vouchers = vouchers
	}
	return b, expired
}

func (b VoucherBook) Filter(status VoucherStatus) []Voucher {
	out := make([]Voucher, 0, len(b.Vouchers))
	for _, v := range b.Vouchers {
		if status == "" || v.Status == status {
			out = append(out, v)
		}
	}
	return out
}
