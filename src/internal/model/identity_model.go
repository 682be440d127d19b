package model

import "wallet-service/src/internal/entity"

type MintIdentityRequest struct {
	ServiceNumber string `json:"serviceNumber" validate:"required,max=32"`
	Name          string `json:"name" validate:"required,max=50"`
	Rank          string `json:"rank" validate:"required,rank"`
	Unit          string `json:"unit,omitempty" validate:"max=100"`
}

type SignRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type IdentityResponse struct {
	Minted     bool                     `json:"minted"`
	Identity   *entity.SoldierIdentity  `json:"identity,omitempty"`
	Signatures []entity.SignatureRecord `json:"signatures"`
}

type MintTrainingRequest struct {
	Title         string `json:"title" validate:"required,max=100"`
	Level         string `json:"level" validate:"required,oneof=기초 심화 전문 특수"`
	Hours         int    `json:"hours" validate:"gte=0,lte=10000"`
	Institution   string `json:"institution,omitempty" validate:"max=100"`
	Instructor    string `json:"instructor,omitempty" validate:"max=100"`
	CompletedDate string `json:"completedDate" validate:"required,datetime=2006-01-02"`
}

type TrainingListResponse struct {
	Records []entity.TrainingRecord `json:"records"`
	Count   int                     `json:"count"`
}
