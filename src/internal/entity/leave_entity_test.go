package entity

import (
	"testing"
	"time"

	"wallet-service/src/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var leaveStatuses = []LeaveStatus{LeaveRequested, LeaveApproved, LeaveRejected, LeaveCancelled, LeaveCompleted}

func leaveIn(status LeaveStatus) LeaveBook {
	return LeaveBook{Leaves: []LeaveRequest{{
		ID:          "L-1",
		Origin:      "BASE",
		Destination: "HOME",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-14",
		Status:      status,
		CreatedAt:   epoch,
		UpdatedAt:   epoch,
	}}}
}

func TestLeaveTransitionLegality(t *testing.T) {
	events := map[LeaveStatus]func(LeaveBook, string, time.Time) (LeaveBook, LeaveRequest, error){
		LeaveApproved: func(b LeaveBook, id string, at time.Time) (LeaveBook, LeaveRequest, error) {
			return b.Approve(id, Officer{}, at)
		},
		LeaveRejected:  LeaveBook.Reject,
		LeaveCancelled: LeaveBook.Cancel,
		LeaveCompleted: LeaveBook.Complete,
	}
	at := epoch.Add(time.Hour)
	for _, from := range leaveStatuses {
		for to, apply := range events {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				book := leaveIn(from)
				next, l, err := apply(book, "L-1", at)
				if CanTransitionLeave(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, l.Status)
					assert.Equal(t, at, next.Leaves[0].UpdatedAt)
					return
				}
				require.ErrorIs(t, err, ErrIllegalTransition)
				assert.Equal(t, book, next)
			})
		}
	}
}

func TestLeaveTerminalStates(t *testing.T) {
	for _, s := range []LeaveStatus{LeaveRejected, LeaveCancelled, LeaveCompleted} {
		for _, to := range leaveStatuses {
			assert.False(t, CanTransitionLeave(s, to), "%s -> %s", s, to)
		}
	}
}

func TestLeaveApproveKeepsOfficerWhenBlank(t *testing.T) {
	book := leaveIn(LeaveRequested)
	book.Leaves[0].OfficerName = "소대장"
	book.Leaves[0].OfficerContact = "010-1234-5678"

	next, l, err := book.Approve("L-1", Officer{Name: "중대장"}, epoch.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "중대장", l.OfficerName)
	assert.Equal(t, "010-1234-5678", l.OfficerContact)
	assert.Equal(t, "소대장", book.Leaves[0].OfficerName)
	assert.Equal(t, l, next.Leaves[0])
}

func TestLeaveRequest(t *testing.T) {
	var book LeaveBook
	_, _, err := book.Request(stampAt(1), LeaveDraft{TransportMode: "rocket"}, "T-1")
	require.ErrorIs(t, err, ErrInvalidTransportMode)

	book, l, err := book.Request(stampAt(1), LeaveDraft{Origin: "BASE", Destination: "HOME", StartDate: "2026-03-10", EndDate: "2026-03-12"}, "T-1")
	require.NoError(t, err)
	assert.Equal(t, LeaveRequested, l.Status)
	assert.Nil(t, l.Transport)

	book, l, err = book.Request(stampAt(2), LeaveDraft{Origin: "BASE", Destination: "JEJU", TransportMode: TransportAir}, "T-2")
	require.NoError(t, err)
	require.NotNil(t, l.Transport)
	assert.Equal(t, "T-2", l.Transport.ID)
	assert.Equal(t, TransportAir, l.Transport.Mode)
	assert.Equal(t, "tx-2", book.Leaves[0].ID)
	assert.Len(t, book.Leaves, 2)
}

func TestLeaveUnknownID(t *testing.T) {
	book := leaveIn(LeaveRequested)
	_, _, err := book.Approve("nope", Officer{}, epoch)
	require.ErrorIs(t, err, ErrNotFound)
	_, _, err = book.PrintTransport(token.Base64Encoder{}, "nope", epoch)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttachAndPrintTransport(t *testing.T) {
	enc := token.Base64Encoder{}
	book := leaveIn(LeaveApproved)

	_, _, err := book.PrintTransport(enc, "L-1", epoch)
	require.ErrorIs(t, err, ErrNoTransport)

	_, _, err = book.AttachTransport("L-1", "car", "T-1", epoch)
	require.ErrorIs(t, err, ErrInvalidTransportMode)

	book, l, err := book.AttachTransport("L-1", TransportBus, "T-1", epoch.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "T-1", l.Transport.ID)

	printedAt := epoch.Add(2 * time.Minute)
	printed, l, err := book.PrintTransport(enc, "L-1", printedAt)
	require.NoError(t, err)
	require.NotNil(t, l.Transport.PrintedAt)
	assert.Equal(t, printedAt, *l.Transport.PrintedAt)
	assert.Equal(t, LeaveTicketHash(enc, l, TransportBus), l.Transport.TicketHash)
	assert.Empty(t, book.Leaves[0].Transport.TicketHash, "source book must keep its own ticket")

	// mode change keeps the ticket id and the old hash until reprinted
	changed, l, err := printed.AttachTransport("L-1", TransportRail, "T-other", epoch.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "T-1", l.Transport.ID)
	assert.Equal(t, TransportRail, l.Transport.Mode)
	assert.Equal(t, printed.Leaves[0].Transport.TicketHash, l.Transport.TicketHash)

	_, l, err = changed.PrintTransport(enc, "L-1", epoch.Add(4*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, LeaveTicketHash(enc, l, TransportRail), l.Transport.TicketHash)
	assert.NotEqual(t, printed.Leaves[0].Transport.TicketHash, l.Transport.TicketHash)
}

func TestLeaveFilterAndSeed(t *testing.T) {
	book := SeedLeaves(token.NewSequenceGenerator("seed"), epoch)
	assert.Len(t, book.Filter(""), 3)
	assert.Len(t, book.Filter(LeaveApproved), 2)
	completed := book.Filter(LeaveCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "DEMOHASH123", completed[0].Transport.TicketHash)
	assert.Empty(t, book.Filter(LeaveRejected))
}
