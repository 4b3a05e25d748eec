package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mstratford/fpl-advisor/internal/fpl"
)

// RefresherService keeps FPL data warm on a schedule. Each cycle drops the
// cached upstream payloads, refetches them, and records snapshots so every
// evaluation in between sees one consistent gameweek state.
type RefresherService struct {
	client    *fpl.Client
	cache     *CacheService
	snapshots *SnapshotService
	logger    *logrus.Logger
	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
	interval  time.Duration
	retention time.Duration
}

func NewRefresherService(
	client *fpl.Client,
	cache *CacheService,
	snapshots *SnapshotService,
	logger *logrus.Logger,
	interval time.Duration,
) *RefresherService {
	return &RefresherService{
		client:    client,
		cache:     cache,
		snapshots: snapshots,
		logger:    logger,
		cron:      cron.New(),
		interval:  interval,
		retention: 14 * 24 * time.Hour,
	}
}

// Start begins the scheduled refresh cycle.
func (s *RefresherService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	_, err := s.cron.AddFunc(schedule, s.refresh)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	// Daily snapshot pruning keeps the history table bounded
	_, err = s.cron.AddFunc("0 3 * * *", s.prune)
	if err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	// Warm the cache immediately on startup
	go s.refresh()

	s.logger.Info("Refresher service started")
	return nil
}

// Stop halts the scheduled refresh and waits for in-flight jobs.
func (s *RefresherService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Refresher service stopped")
}

// RefreshNow triggers a refresh outside the schedule.
func (s *RefresherService) RefreshNow() {
	go s.refresh()
}

func (s *RefresherService) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.logger.Info("Starting FPL data refresh")

	if err := s.cache.InvalidateGameweekData(ctx); err != nil {
		s.logger.Warnf("Failed to invalidate cached payloads: %v", err)
	}

	bootstrap, err := s.client.GetBootstrap(ctx)
	if err != nil {
		s.logger.Errorf("Failed to refresh bootstrap: %v", err)
		return
	}
	if _, err := s.snapshots.RecordBootstrap(ctx, bootstrap); err != nil {
		s.logger.Errorf("Failed to record bootstrap snapshot: %v", err)
	}

	fixtures, err := s.client.GetFixtures(ctx)
	if err != nil {
		s.logger.Errorf("Failed to refresh fixtures: %v", err)
		return
	}
	gameweek := fpl.CurrentGameweek(bootstrap)
	if _, err := s.snapshots.RecordFixtures(ctx, gameweek, fixtures); err != nil {
		s.logger.Errorf("Failed to record fixtures snapshot: %v", err)
	}

	s.logger.WithFields(logrus.Fields{
		"gameweek": gameweek,
		"players":  len(bootstrap.Elements),
		"fixtures": len(fixtures),
	}).Info("Completed FPL data refresh")
}

func (s *RefresherService) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.snapshots.Prune(ctx, s.retention); err != nil {
		s.logger.Errorf("Snapshot pruning failed: %v", err)
	}
}

// Status reports the scheduler state for the health endpoint.
func (s *RefresherService) Status() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	nextRuns := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		nextRuns = append(nextRuns, entry.Next)
	}

	return map[string]interface{}{
		"is_running":       s.isRunning,
		"refresh_interval": s.interval.String(),
		"next_runs":        nextRuns,
		"cron_jobs":        len(entries),
	}
}
