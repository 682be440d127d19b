package entity

import (
	"time"

	"wallet-service/src/pkg/token"
)

type TransportMode string

const (
	TransportBus  TransportMode = "bus"
	TransportAir  TransportMode = "air"
	TransportShip TransportMode = "ship"
	TransportRail TransportMode = "rail"
)

func (m TransportMode) Valid() bool {
	switch m {
	case TransportBus, TransportAir, TransportShip, TransportRail:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveRequested LeaveStatus = "requested"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
	LeaveCompleted LeaveStatus = "completed"
)

var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeaveRequested: {LeaveApproved, LeaveRejected, LeaveCancelled},
	LeaveApproved:  {LeaveCancelled, LeaveCompleted},
}

func CanTransitionLeave(from, to LeaveStatus) bool {
	for _, s := range leaveTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransportTicket is the transport voucher embedded in a leave request.
type TransportTicket struct {
	ID         string        `json:"id"`
	Mode       TransportMode `json:"mode"`
	TicketHash string        `json:"ticketHash,omitempty"`
	PrintedAt  *time.Time    `json:"printedAt,omitempty"`
}

type Officer struct {
	Name    string `json:"name,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type LeaveDraft struct {
	Purpose        string        `json:"purpose,omitempty"`
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	OfficerName    string        `json:"officerName,omitempty"`
	OfficerContact string        `json:"officerContact,omitempty"`
	TransportMode  TransportMode `json:"transportMode,omitempty"`
}

type LeaveRequest struct {
	ID             string           `json:"id"`
	Purpose        string           `json:"purpose,omitempty"`
	Origin         string           `json:"origin"`
	Destination    string           `json:"destination"`
	StartDate      string           `json:"startDate"`
	EndDate        string           `json:"endDate"`
	Status         LeaveStatus      `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Transport      *TransportTicket `json:"transport,omitempty"`
	OfficerName    string           `json:"officerName,omitempty"`
	OfficerContact string           `json:"officerContact,omitempty"`
}

// LeaveBook is every leave request, newest first.
type LeaveBook struct {
	Leaves []LeaveRequest `json:"leaves"`
}

func LeaveTicketHash(enc token.Encoder, l LeaveRequest, mode TransportMode) string {
	return enc.Encode(l.ID, l.StartDate, l.EndDate, l.Origin, l.Destination, string(mode))
}

func (b LeaveBook) find(id string) int {
	for i, l := range b.Leaves {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (b LeaveBook) Get(id string) (LeaveRequest, bool) {
	if i := b.find(id); i >= 0 {
		return b.Leaves[i], true
	}
	return LeaveRequest{}, false
}

// update copies the book and applies fn to the leave with the given id.
func (b LeaveBook) update(id string, fn func(*LeaveRequest) error) (LeaveBook, LeaveRequest, error) {
	i := b.find(id)
	if i < 0 {
		return b, LeaveRequest{}, ErrNotFound
	}
	l := b.Leaves[i]
	if l.Transport != nil {
		t := *l.Transport
		l.Transport = &t
	}
	if err := fn(&l); err != nil {
		return b, b.Leaves[i], err
	}
	leaves := append([]LeaveRequest(nil), b.Leaves...)
	leaves[i] = l
	b.Leaves = leaves
	return b, l, nil
}

// Request files a new leave; transportID is used only when a mode is given.
func (b LeaveBook) Request(s Stamp, d LeaveDraft, transportID string) (LeaveBook, LeaveRequest, error) {
	if d.TransportMode != "" && !d.TransportMode.Valid() {
		return b, LeaveRequest{}, ErrInvalidTransportMode
	}
	l := LeaveRequest{
		ID:             s.ID,
		Purpose:        d.Purpose,
		Origin:         d.Origin,
		Destination:    d.Destination,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         LeaveRequested,
		CreatedAt:      s.At,
		UpdatedAt:      s.At,
		OfficerName:    d.OfficerName,
		OfficerContact: d.OfficerContact,
	}
	if d.TransportMode != "" {
		l.Transport = &TransportTicket{ID: transportID, Mode: d.TransportMode}
	}
	leaves := make([]LeaveRequest, 0, len(b.Leaves)+1)
	leaves = append(leaves, l)
	leaves = append(leaves, b.Leaves...)
	b.Leaves = leaves
	return b, l, nil
}

func (b LeaveBook) transition(id string, to LeaveStatus, at time.Time, also func(*LeaveRequest)) (LeaveBook, LeaveRequest, error) {
	return b.update(id, func(l *LeaveRequest) error {
		if !CanTransitionLeave(l.Status, to) {
			return ErrIllegalTransition
		}
		l.Status = to
		l.UpdatedAt = later(l.UpdatedAt, at)
		if also != nil {
			also(l)
		}
		return nil
	})
}

// Approve moves requested -> approved; empty officer fields keep the old values.
func (b LeaveBook) Approve(id string, officer Officer, at time.Time) (LeaveBook, LeaveRequest, error) {
	return b.transition(id, LeaveApproved, at, func(l *LeaveRequest) {
		if officer.Name != "" {
			l.OfficerName = officer.Name
		}
		if officer.Contact != "" {
			l.OfficerContact = officer.Contact
		}
	})
}

func (b LeaveBook) Reject(id string, at time.Time) (LeaveBook, LeaveRequest, error) {
	return b.transition(id, LeaveRejected, at, nil)
}

func (b LeaveBook) Cancel(id string, at time.Time) (LeaveBook, LeaveRequest, error) {
	return b.transition(id, LeaveCancelled, at, nil)
}

func (b LeaveBook) Complete(id string, at time.Time) (LeaveBook, LeaveRequest, error) {
	return b.transition(id, LeaveCompleted, at, nil)
}

// AttachTransport sets or overwrites the mode on any leave, keeping an
// existing ticket id, hash and print time.
func (b LeaveBook) AttachTransport(id string, mode TransportMode, transportID string, at time.Time) (LeaveBook, LeaveRequest, error) {
	if !mode.Valid() {
		return b, LeaveRequest{}, ErrInvalidTransportMode
	}
	return b.update(id, func(l *LeaveRequest) error {
		if l.Transport == nil {
			l.Transport = &TransportTicket{ID: transportID}
		}
		l.Transport.Mode = mode
		l.UpdatedAt = later(l.UpdatedAt, at)
		return nil
	})
}

// PrintTransport stamps the ticket hash over (id, dates, route, mode).
func (b LeaveBook) PrintTransport(enc token.Encoder, id string, at time.Time) (LeaveBook, LeaveRequest, error) {
	return b.update(id, func(l *LeaveRequest) error {
		if l.Transport == nil {
			return ErrNoTransport
		}
		l.Transport.TicketHash = LeaveTicketHash(enc, *l, l.Transport.Mode)
		printed := at
		l.Transport.PrintedAt = &printed
		l.UpdatedAt = later(l.UpdatedAt, at)
		return nil
	})
}

func (b LeaveBook) Filter(status LeaveStatus) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(b.Leaves))
	for _, l := range b.Leaves {
		if status == "" || l.Status == status {
			out = append(out, l)
		}
	}
	return out
}
