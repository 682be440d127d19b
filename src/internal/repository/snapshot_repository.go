package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-service/src/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{
		DB: db,
	}
}

// Migrate creates the snapshots table when missing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Snapshot{})
}

func (r *SnapshotRepository) Load(ctx context.Context, slot string, dst any) (bool, error) {
	var snap entity.Snapshot
	err := r.DB.WithContext(ctx).Where("slot = ?", slot).Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(snap.Payload, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, slot, err)
	}
	return true, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, slot string, src any) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return err
	}
	snap := entity.Snapshot{
		Slot:      slot,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
}
