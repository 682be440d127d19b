package converter

import (
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
)

func RequestToLeaveDraft(request *model.RequestLeaveRequest) entity.LeaveDraft {
	return entity.LeaveDraft{
		Purpose:        request.Purpose,
		Origin:         request.Origin,
		Destination:    request.Destination,
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		OfficerName:    request.OfficerName,
		OfficerContact: request.OfficerContact,
		TransportMode:  entity.TransportMode(request.TransportMode),
	}
}

func RequestToVoucherDraft(request *model.RequestVoucherRequest) entity.VoucherDraft {
	return entity.VoucherDraft{
		Mode:        entity.TransportMode(request.Mode),
		RoundTrip:   request.RoundTrip,
		Origin:      request.Origin,
		Destination: request.Destination,
		DepartDate:  request.DepartDate,
		ReturnDate:  request.ReturnDate,
	}
}

func ApproveToOfficer(request *model.ApproveRequest) entity.Officer {
	return entity.Officer{Name: request.OfficerName, Contact: request.OfficerContact}
}
