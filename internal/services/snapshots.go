package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mstratford/fpl-advisor/internal/fpl"
	"github.com/mstratford/fpl-advisor/internal/models"
)

// SnapshotService persists raw FPL API payloads for history and debugging.
type SnapshotService struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewSnapshotService(db *gorm.DB, logger *logrus.Logger) *SnapshotService {
	return &SnapshotService{
		db:     db,
		logger: logger,
	}
}

// RecordBootstrap stores the full bootstrap payload with summary columns for
// quick inspection.
func (s *SnapshotService) RecordBootstrap(ctx context.Context, bootstrap *fpl.Bootstrap) (*models.Snapshot, error) {
	payload, err := json.Marshal(bootstrap)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bootstrap: %w", err)
	}

	teams := make([]string, 0, len(bootstrap.Teams))
	for _, team := range bootstrap.Teams {
		teams = append(teams, team.ShortName)
	}

	snapshot := &models.Snapshot{
		Kind:        models.SnapshotBootstrap,
		Gameweek:    fpl.CurrentGameweek(bootstrap),
		PlayerCount: len(bootstrap.Elements),
		Teams:       teams,
		Payload:     payload,
		FetchedAt:   time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, fmt.Errorf("failed to store bootstrap snapshot: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"gameweek": snapshot.Gameweek,
		"players":  snapshot.PlayerCount,
	}).Info("Stored bootstrap snapshot")
	return snapshot, nil
}

// RecordFixtures stores the raw fixture list for the given gameweek.
func (s *SnapshotService) RecordFixtures(ctx context.Context, gameweek int, fixtures []fpl.APIFixture) (*models.Snapshot, error) {
	payload, err := json.Marshal(fixtures)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fixtures: %w", err)
	}

	snapshot := &models.Snapshot{
		Kind:      models.SnapshotFixtures,
		Gameweek:  gameweek,
		Payload:   payload,
		FetchedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, fmt.Errorf("failed to store fixtures snapshot: %w", err)
	}
	return snapshot, nil
}

// RecordPicks stores a manager's squad picks for the given gameweek.
func (s *SnapshotService) RecordPicks(ctx context.Context, gameweek int, picks *fpl.Picks) (*models.Snapshot, error) {
	payload, err := json.Marshal(picks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal picks: %w", err)
	}

	snapshot := &models.Snapshot{
		Kind:      models.SnapshotPicks,
		Gameweek:  gameweek,
		Payload:   payload,
		FetchedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, fmt.Errorf("failed to store picks snapshot: %w", err)
	}
	return snapshot, nil
}

// Latest returns the most recent snapshot of the given kind, or nil when no
// snapshot has been recorded yet.
func (s *SnapshotService) Latest(ctx context.Context, kind string) (*models.Snapshot, error) {
	var snapshot models.Snapshot
	err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("fetched_at DESC").
		First(&snapshot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest snapshot: %w", err)
	}
	return &snapshot, nil
}

// History lists snapshots of a kind, newest first, capped at limit.
func (s *SnapshotService) History(ctx context.Context, kind string, limit int) ([]models.Snapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	var snapshots []models.Snapshot
	err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("fetched_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// Prune deletes snapshots older than the retention window.
func (s *SnapshotService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	result := s.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff).
		Delete(&models.Snapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		s.logger.Infof("Pruned %d snapshots older than %s", result.RowsAffected, cutoff.Format(time.RFC3339))
	}
	return result.RowsAffected, nil
}
