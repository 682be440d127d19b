package converter

import (
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
)

const (
	KindLeave      = "leave"
	KindVoucher    = "voucher"
	KindIdentity   = "identity"
	KindTraining   = "training"
	KindInvestment = "investment"
)

func StatusEvent(eventID, kind, recordID, action, status string, at time.Time) *model.StatusEvent {
	return &model.StatusEvent{
		EventID:    eventID,
		RecordID:   recordID,
		Kind:       kind,
		Action:     action,
		Status:     status,
		OccurredAt: at,
	}
}

func LeaveToEvent(eventID, action string, leave entity.LeaveRequest) *model.StatusEvent {
	return StatusEvent(eventID, KindLeave, leave.ID, action, string(leave.Status), leave.UpdatedAt)
}

func VoucherToEvent(eventID, action string, voucher entity.Voucher) *model.StatusEvent {
	return StatusEvent(eventID, KindVoucher, voucher.ID, action, string(voucher.Status), voucher.UpdatedAt)
}

func LeavesToResponse(leaves []entity.LeaveRequest) *model.LeaveListResponse {
	return &model.LeaveListResponse{Leaves: leaves, Count: len(leaves)}
}

func VouchersToResponse(vouchers []entity.Voucher) *model.VoucherListResponse {
	return &model.VoucherListResponse{Vouchers: vouchers, Count: len(vouchers)}
}
