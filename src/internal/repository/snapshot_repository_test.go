package repository

import (
	"context"
	"testing"

	"wallet-service/src/internal/entity"
	"wallet-service/src/pkg/databases"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := databases.Open(databases.Cfg{Driver: databases.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSnapshotRepositoryMissingSlot(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	var rate entity.ExchangeRate
	ok, err := repo.Load(context.Background(), entity.SlotRate, &rate)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotRepositoryRoundTripAndOverwrite(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(newTestDB(t))

	rec := entity.ServiceRecord{DischargeDate: "2026-09-01"}
	require.NoError(t, repo.Save(ctx, entity.SlotService, rec))
	rec.DischargeDate = "2026-10-01"
	require.NoError(t, repo.Save(ctx, entity.SlotService, rec))

	var got entity.ServiceRecord
	ok, err := repo.Load(ctx, entity.SlotService, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2026-10-01", got.DischargeDate)

	var count int64
	require.NoError(t, repo.DB.Model(&entity.Snapshot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSnapshotRepositoryKeepsDecimals(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(newTestDB(t))

	rate := entity.ExchangeRate{Base: "CMD/KRW", KRWPerCMD: decimal.RequireFromString("1234.5678")}
	require.NoError(t, repo.Save(ctx, entity.SlotRate, rate))

	var got entity.ExchangeRate
	_, err := repo.Load(ctx, entity.SlotRate, &got)
	require.NoError(t, err)
	assert.True(t, rate.KRWPerCMD.Equal(got.KRWPerCMD))
}

func TestSnapshotRepositoryCorruptPayload(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(newTestDB(t))
	require.NoError(t, repo.DB.Create(&entity.Snapshot{Slot: entity.SlotLeave, Payload: []byte("{not json")}).Error)

	var book entity.LeaveBook
	ok, err := repo.Load(ctx, entity.SlotLeave, &book)
	assert.True(t, ok)
	require.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestRedisSnapshotKey(t *testing.T) {
	assert.Equal(t, "wallet:voucher-store", NewRedisSnapshotRepository(nil, "").Key(entity.SlotVoucher))
	assert.Equal(t, "demo:rate-store", NewRedisSnapshotRepository(nil, "demo").Key(entity.SlotRate))
}
