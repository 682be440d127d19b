package model

type SetDischargeRequest struct {
	DischargeDate string `json:"dischargeDate" validate:"required,max=10"`
}

type ServiceResponse struct {
	DischargeDate string `json:"dischargeDate"`
	DaysRemaining int    `json:"daysRemaining"`
}
