package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/gateway/messaging"
	"wallet-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) leaveUseCase(seed bool) *LeaveUseCase {
	return NewLeaveUseCase(f.log, f.validate, f.store, f.clock, f.gen, f.enc, f.lifecycle, seed)
}

func (f *fixture) voucherUseCase() *VoucherUseCase {
	return NewVoucherUseCase(f.log, f.validate, f.store, f.clock, f.gen, f.enc, f.lifecycle)
}

func TestLeaveWorkflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.leaveUseCase(false)

	m := mutation[entity.LeaveRequest](t, uc.Request(ctx, &model.RequestLeaveRequest{
		Origin: "BASE", Destination: "HOME", StartDate: "2026-03-10", EndDate: "2026-03-14",
	}))
	require.True(t, m.Applied)
	id := m.Record.ID

	f.clock.Advance(time.Hour)
	m = mutation[entity.LeaveRequest](t, uc.Approve(ctx, &model.ApproveRequest{ID: id, OfficerName: "중대장"}))
	require.True(t, m.Applied)
	assert.Equal(t, entity.LeaveApproved, m.Record.Status)
	assert.Equal(t, "중대장", m.Record.OfficerName)

	m = mutation[entity.LeaveRequest](t, uc.Reject(ctx, &model.IDRequest{ID: id}))
	assert.False(t, m.Applied)
	assert.Equal(t, entity.ErrIllegalTransition.Error(), m.Reason)
	assert.Equal(t, entity.LeaveApproved, m.Record.Status)

	m = mutation[entity.LeaveRequest](t, uc.PrintTransport(ctx, &model.IDRequest{ID: id}))
	assert.False(t, m.Applied)
	assert.Equal(t, entity.ErrNoTransport.Error(), m.Reason)

	m = mutation[entity.LeaveRequest](t, uc.AttachTransport(ctx, &model.AttachTransportRequest{ID: id, Mode: "rail"}))
	require.True(t, m.Applied)
	m = mutation[entity.LeaveRequest](t, uc.PrintTransport(ctx, &model.IDRequest{ID: id}))
	require.True(t, m.Applied)
	assert.Equal(t, entity.LeaveTicketHash(f.enc, m.Record, entity.TransportRail), m.Record.Transport.TicketHash)

	m = mutation[entity.LeaveRequest](t, uc.Complete(ctx, &model.IDRequest{ID: id}))
	assert.Equal(t, entity.LeaveCompleted, m.Record.Status)

	assert.Equal(t, []string{
		messaging.TopicLeaveStatus, messaging.TopicLeaveStatus, messaging.TopicLeaveStatus,
		messaging.TopicLeaveStatus, messaging.TopicLeaveStatus,
	}, f.kafka.topics())
}

func TestLeaveUnknownAndInvalidMode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.leaveUseCase(false)

	m := mutation[entity.LeaveRequest](t, uc.Cancel(ctx, &model.IDRequest{ID: "ghost"}))
	assert.False(t, m.Applied)
	assert.Equal(t, entity.ErrNotFound.Error(), m.Reason)

	m = mutation[entity.LeaveRequest](t, uc.Request(ctx, &model.RequestLeaveRequest{
		Origin: "BASE", Destination: "HOME", StartDate: "2026-03-10", EndDate: "2026-03-14", TransportMode: "taxi",
	}))
	assert.False(t, m.Applied)
	assert.Equal(t, entity.ErrInvalidTransportMode.Error(), m.Reason)

	result := uc.Request(ctx, &model.RequestLeaveRequest{Origin: "BASE", Destination: "HOME", StartDate: "10/03/2026", EndDate: "2026-03-14"})
	requireStatus(t, result.Error, http.StatusBadRequest)
	assert.Empty(t, f.kafka.messages)
}

func TestLeaveListSeedAndFilter(t *testing.T) {
	f := newFixture(t)
	uc := f.leaveUseCase(true)

	all := uc.List(context.Background(), &model.LeaveListRequest{}).Data.(*model.LeaveListResponse)
	assert.Equal(t, 3, all.Count)
	approved := uc.List(context.Background(), &model.LeaveListRequest{Status: "approved"}).Data.(*model.LeaveListResponse)
	assert.Equal(t, 2, approved.Count)
}

func TestVoucherWorkflowAndSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.voucherUseCase()

	m := mutation[entity.Voucher](t, uc.Request(ctx, &model.RequestVoucherRequest{
		Mode: "bus", Origin: "BASE", Destination: "SEOUL", DepartDate: "2026-03-02",
	}))
	require.True(t, m.Applied)
	id := m.Record.ID

	m = mutation[entity.Voucher](t, uc.Print(ctx, &model.IDRequest{ID: id}))
	assert.False(t, m.Applied, "print before approval is not an edge")

	f.clock.Advance(time.Minute)
	m = mutation[entity.Voucher](t, uc.Approve(ctx, &model.ApproveRequest{ID: id, OfficerName: "대대장"}))
	require.True(t, m.Applied)
	m = mutation[entity.Voucher](t, uc.Print(ctx, &model.IDRequest{ID: id}))
	require.True(t, m.Applied)
	assert.Equal(t, entity.VoucherPrintHash(f.enc, id, "2026-03-02", "BASE", "SEOUL", "대대장"), m.Record.ImmutablePrintHash)

	sweep := mutation[*model.SweepResponse](t, uc.ExpireSweep(ctx))
	assert.Empty(t, sweep.Record.Expired)

	// 2026-03-02 + 24h grace has passed by 2026-03-03 01:00
	f.clock.Set(time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC))
	sweep = mutation[*model.SweepResponse](t, uc.ExpireSweep(ctx))
	assert.Equal(t, []string{id}, sweep.Record.Expired)

	again := mutation[*model.SweepResponse](t, uc.ExpireSweep(ctx))
	assert.Empty(t, again.Record.Expired)

	list := uc.List(ctx, &model.VoucherListRequest{Status: "expired"}).Data.(*model.VoucherListResponse)
	require.Equal(t, 1, list.Count)

	m = mutation[entity.Voucher](t, uc.MarkUsed(ctx, &model.IDRequest{ID: id}))
	assert.False(t, m.Applied)
	m = mutation[entity.Voucher](t, uc.Destroy(ctx, &model.IDRequest{ID: id}))
	assert.True(t, m.Applied)
	assert.Equal(t, entity.VoucherDestroyed, m.Record.Status)

	assert.NoError(t, uc.HandleExpireSweep(ctx, nil))
}
