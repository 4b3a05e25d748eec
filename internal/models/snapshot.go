package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Snapshot kinds.
const (
	SnapshotBootstrap = "bootstrap"
	SnapshotFixtures  = "fixtures"
	SnapshotPicks     = "picks"
)

// Snapshot stores one raw pull from the FPL API. Only upstream payloads are
// kept for history and debugging; computed predictions are never persisted.
type Snapshot struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Kind        string         `gorm:"size:20;index;not null" json:"kind"`
	Gameweek    int            `gorm:"index" json:"gameweek"`
	PlayerCount int            `json:"player_count"`
	Teams       pq.StringArray `gorm:"type:text[]" json:"teams"`
	Payload     datatypes.JSON `json:"payload"`
	FetchedAt   time.Time      `gorm:"index" json:"fetched_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Snapshot) TableName() string {
	return "snapshots"
}
