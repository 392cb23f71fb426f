package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Timestamped is the base embedded by every persisted entity. IDs are
// ULIDs: unique, string-sortable and monotonically increasing with
// creation time. Timestamps are float seconds since the epoch.
type Timestamped struct {
	ID            string  `gorm:"primaryKey;size:26;index" json:"id"`
	CreatedAt     float64 `gorm:"column:created_at;not null" json:"created_at"`
	LastUpdatedAt float64 `gorm:"column:last_updated_at;not null" json:"last_updated_at"`
}

func epochSeconds() float64 {
	return float64(time.Now().UnixMicro()) / 1e6
}

// BeforeCreate assigns the ULID and timestamps when they are not already set.
func (t *Timestamped) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = ulid.Make().String()
	}
	now := epochSeconds()
	if t.CreatedAt == 0 {
		t.CreatedAt = now
	}
	t.LastUpdatedAt = now
	return nil
}

// BeforeUpdate refreshes last_updated_at on every mutation.
func (t *Timestamped) BeforeUpdate(tx *gorm.DB) error {
	t.LastUpdatedAt = epochSeconds()
	return nil
}
