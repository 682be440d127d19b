package entity

import (
	"time"

	"wallet-service/src/pkg/token"
)

type TrainingLevel string

const (
	TrainingBasic    TrainingLevel = "기초"
	TrainingAdvanced TrainingLevel = "심화"
	TrainingExpert   TrainingLevel = "전문"
	TrainingSpecial  TrainingLevel = "특수"
)

type TrainingStatus string

const (
	TrainingCompleted TrainingStatus = "completed"
	TrainingRevoked   TrainingStatus = "revoked"
)

const TrainingContract = "0xTRAINING00000000000000000000000000000001"

type TrainingNFT struct {
	TokenID     string    `json:"tokenId"`
	Contract    string    `json:"contract"`
	ChainID     int       `json:"chainId"`
	IssuedAt    time.Time `json:"issuedAt"`
	TxHash      string    `json:"txHash"`
	MetadataCID string    `json:"metadataCid"`
	Fingerprint string    `json:"fingerprint"`
}

// TrainingDraft is what a caller supplies when minting a completion record.
type TrainingDraft struct {
	Title         string        `json:"title"`
	Level         TrainingLevel `json:"level"`
	Hours         int           `json:"hours"`
	Institution   string        `json:"institution,omitempty"`
	Instructor    string        `json:"instructor,omitempty"`
	CompletedDate string        `json:"completedDate"`
}

type TrainingRecord struct {
	ID string `json:"id"`
	TrainingDraft
	Status TrainingStatus `json:"status"`
	NFT    TrainingNFT    `json:"nft"`
}

type TrainingLedger struct {
	Records []TrainingRecord `json:"records"`
}

func TrainingFingerprint(enc token.Encoder, d TrainingDraft) string {
	return enc.Encode(d.Title, string(d.Level), d.CompletedDate)
}

func NewTrainingRecord(gen token.Generator, enc token.Encoder, s Stamp, d TrainingDraft) TrainingRecord {
	return TrainingRecord{
		ID:            s.ID,
		TrainingDraft: d,
		Status:        TrainingCompleted,
		NFT: TrainingNFT{
			TokenID:     gen.TokenID(),
			Contract:    TrainingContract,
			ChainID:     MockChainID,
			IssuedAt:    s.At,
			TxHash:      gen.TxHash(),
			MetadataCID: gen.ContentID(),
			Fingerprint: TrainingFingerprint(enc, d),
		},
	}
}

// Mint always succeeds; the record is prepended.
func (l TrainingLedger) Mint(rec TrainingRecord) TrainingLedger {
	records := make([]TrainingRecord, 0, len(l.Records)+1)
	records = append(records, rec)
	records = append(records, l.Records...)
	l.Records = records
	return l
}

// Revoke flips the status; records are never removed.
func (l TrainingLedger) Revoke(id string) (TrainingLedger, TrainingRecord, error) {
	for i, r := range l.Records {
		if r.ID != id {
			continue
		}
		if r.Status == TrainingRevoked {
			return l, r, ErrIllegalTransition
		}
		records := append([]TrainingRecord(nil), l.Records...)
		records[i].Status = TrainingRevoked
		l.Records = records
		return l, records[i], nil
	}
	return l, TrainingRecord{}, ErrNotFound
}
