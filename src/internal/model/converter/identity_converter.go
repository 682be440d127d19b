package converter

import (
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
)

func RegistryToResponse(r entity.IdentityRegistry) *model.IdentityResponse {
	signatures := r.Signatures
	if signatures == nil {
		signatures = []entity.SignatureRecord{}
	}
	return &model.IdentityResponse{
		Minted:     r.Minted(),
		Identity:   r.Identity,
		Signatures: signatures,
	}
}

func RequestToIdentityCore(request *model.MintIdentityRequest) entity.SoldierIdentityCore {
	return entity.SoldierIdentityCore{
		ServiceNumber: request.ServiceNumber,
		Name:          request.Name,
		Rank:          entity.Rank(request.Rank),
		Unit:          request.Unit,
	}
}

func RequestToTrainingDraft(request *model.MintTrainingRequest) entity.TrainingDraft {
	return entity.TrainingDraft{
		Title:         request.Title,
		Level:         entity.TrainingLevel(request.Level),
		Hours:         request.Hours,
		Institution:   request.Institution,
		Instructor:    request.Instructor,
		CompletedDate: request.CompletedDate,
	}
}

func TrainingToResponse(l entity.TrainingLedger) *model.TrainingListResponse {
	records := l.Records
	if records == nil {
		records = []entity.TrainingRecord{}
	}
	return &model.TrainingListResponse{Records: records, Count: len(records)}
}
