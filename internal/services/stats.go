package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmarkov/taskdeck/internal/logging"
	"github.com/dmarkov/taskdeck/internal/models"
	"github.com/dmarkov/taskdeck/internal/repositories/kv"
)

// userStatsKey holds the whole stats collection: one record per known user id.
const userStatsKey = "user-stats"

// DefaultStatsWindow is the rolling usage window.
const DefaultStatsWindow = 7 * 24 * time.Hour

// StatsService tracks rolling usage counters, one record per user.
//
// Contract:
//   - Initialize: insert a zeroed record if absent; never overwrite.
//   - RecordLogin: cliff-reset stale counters, then +1 login count.
//   - RecordTaskCreated: +1 created count. The window reset runs only on the
//     login path; creation events only bump the counter.
//   - Get: pure lookup, (nil, nil) when no record exists.
//
// Recording an event for an unknown user id is a silent no-op.
type StatsService interface {
	Initialize(ctx context.Context, userID string) error
	RecordLogin(ctx context.Context, userID string) error
	RecordTaskCreated(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*models.UserStats, error)
}

type statsService struct {
	repo   kv.Repository
	log    logging.Logger
	window time.Duration
	now    func() time.Time // test seam
}

// NewStatsService constructs a StatsService over the given storage.
// A non-positive window falls back to DefaultStatsWindow.
func NewStatsService(repo kv.Repository, log logging.Logger, window time.Duration) StatsService {
	if window <= 0 {
		window = DefaultStatsWindow
	}
	return &statsService{repo: repo, log: log, window: window, now: time.Now}
}

func (s *statsService) loadAll(ctx context.Context) ([]models.UserStats, error) {
	data, err := s.repo.Get(ctx, userStatsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var all []models.UserStats
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return all, nil
}

func (s *statsService) saveAll(ctx context.Context, all []models.UserStats) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	if err := s.repo.Set(ctx, userStatsKey, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

func indexOfStats(all []models.UserStats, userID string) int {
	for i := range all {
		if all[i].UserID == userID {
			return i
		}
	}
	return -1
}

func (s *statsService) Initialize(ctx context.Context, userID string) error {
	all, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to initialize user stats", "user", userID, "error", err)
		return err
	}
	if indexOfStats(all, userID) != -1 {
		return nil
	}

	all = append(all, models.UserStats{UserID: userID, LastUpdated: s.now().UTC()})
	if err := s.saveAll(ctx, all); err != nil {
		s.log.Error(ctx, "failed to initialize user stats", "user", userID, "error", err)
		return err
	}
	return nil
}

func (s *statsService) RecordLogin(ctx context.Context, userID string) error {
	all, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to record login", "user", userID, "error", err)
		return err
	}
	i := indexOfStats(all, userID)
	if i == -1 {
		return nil
	}

	// A record untouched for longer than the window starts over from zero.
	if all[i].LastUpdated.Before(s.now().Add(-s.window)) {
		all[i].SevenDayLoginCount = 0
		all[i].SevenDayTodoCreatedCount = 0
	}

	all[i].SevenDayLoginCount++
	all[i].LastUpdated = s.now().UTC()

	if err := s.saveAll(ctx, all); err != nil {
		s.log.Error(ctx, "failed to record login", "user", userID, "error", err)
		return err
	}
	return nil
}

func (s *statsService) RecordTaskCreated(ctx context.Context, userID string) error {
	all, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to record task creation", "user", userID, "error", err)
		return err
	}
	i := indexOfStats(all, userID)
	if i == -1 {
		return nil
	}

	all[i].SevenDayTodoCreatedCount++
	all[i].LastUpdated = s.now().UTC()

	if err := s.saveAll(ctx, all); err != nil {
		s.log.Error(ctx, "failed to record task creation", "user", userID, "error", err)
		return err
	}
	return nil
}

func (s *statsService) Get(ctx context.Context, userID string) (*models.UserStats, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to get user stats", "user", userID, "error", err)
		return nil, err
	}
	i := indexOfStats(all, userID)
	if i == -1 {
		return nil, nil
	}
	stats := all[i]
	return &stats, nil
}
