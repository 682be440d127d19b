package entity

import (
	"testing"

	"wallet-service/src/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingMintAndRevoke(t *testing.T) {
	enc := token.Blake2bEncoder{}
	gen := token.NewSequenceGenerator("tr")
	draft := TrainingDraft{Title: "사격", Level: TrainingExpert, Hours: 8, CompletedDate: "2026-02-20"}

	rec := NewTrainingRecord(gen, enc, stampAt(1), draft)
	assert.Equal(t, TrainingCompleted, rec.Status)
	assert.Equal(t, TrainingFingerprint(enc, draft), rec.NFT.Fingerprint)
	assert.Equal(t, TrainingContract, rec.NFT.Contract)
	assert.Equal(t, stampAt(1).At, rec.NFT.IssuedAt)

	l := SeedTraining(gen, enc, epoch).Mint(rec)
	require.Len(t, l.Records, 3)
	assert.Equal(t, rec.ID, l.Records[0].ID)

	revoked, got, err := l.Revoke(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, TrainingRevoked, got.Status)
	assert.Len(t, revoked.Records, 3)
	assert.Equal(t, TrainingCompleted, l.Records[0].Status)

	_, _, err = revoked.Revoke(rec.ID)
	require.ErrorIs(t, err, ErrIllegalTransition)
	_, _, err = revoked.Revoke("ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTrainingFingerprintIgnoresInstructor(t *testing.T) {
	enc := token.Base64Encoder{}
	a := TrainingDraft{Title: "t", Level: TrainingBasic, CompletedDate: "2026-01-01", Instructor: "A"}
	b := a
	b.Instructor = "B"
	assert.Equal(t, TrainingFingerprint(enc, a), TrainingFingerprint(enc, b))
	b.Level = TrainingSpecial
	assert.NotEqual(t, TrainingFingerprint(enc, a), TrainingFingerprint(enc, b))
}
