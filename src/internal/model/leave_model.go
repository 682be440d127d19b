package model

import "wallet-service/src/internal/entity"

type RequestLeaveRequest struct {
	Purpose        string `json:"purpose,omitempty" validate:"max=100"`
	Origin         string `json:"origin" validate:"required,max=100"`
	Destination    string `json:"destination" validate:"required,max=100"`
	StartDate      string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"endDate" validate:"required,datetime=2006-01-02"`
	OfficerName    string `json:"officerName,omitempty" validate:"max=50"`
	OfficerContact string `json:"officerContact,omitempty" validate:"max=50"`
	TransportMode  string `json:"transportMode,omitempty" validate:"max=16"`
}

// ApproveRequest carries the approving officer; blank fields keep what is on file.
type ApproveRequest struct {
	ID             string `json:"-" validate:"required,max=100"`
	OfficerName    string `json:"officerName,omitempty" validate:"max=50"`
	OfficerContact string `json:"officerContact,omitempty" validate:"max=50"`
}

type AttachTransportRequest struct {
	ID   string `json:"-" validate:"required,max=100"`
	Mode string `json:"mode" validate:"required,max=16"`
}

type LeaveListRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=requested approved rejected cancelled completed"`
}

type LeaveListResponse struct {
	Leaves []entity.LeaveRequest `json:"leaves"`
	Count  int                   `json:"count"`
}

type RequestVoucherRequest struct {
	Mode        string `json:"mode" validate:"required,max=16"`
	RoundTrip   bool   `json:"roundTrip"`
	Origin      string `json:"origin" validate:"required,max=100"`
	Destination string `json:"destination" validate:"required,max=100"`
	DepartDate  string `json:"departDate" validate:"required,datetime=2006-01-02"`
	ReturnDate  string `json:"returnDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type VoucherListRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=requested approved printed used cancelled expired destroyed"`
}

type VoucherListResponse struct {
	Vouchers []entity.Voucher `json:"vouchers"`
	Count    int              `json:"count"`
}

type SweepResponse struct {
	Expired []string `json:"expired"`
}
