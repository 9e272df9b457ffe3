package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"treemath/binexpr/pkg/config"
)

// Pruner deletes history records that fall outside the retention policy:
// records older than RetentionDays, and the oldest records beyond
// MaxRecords. A zero value disables the corresponding limit.
type Pruner struct {
	store  *Store
	config *config.HistoryConfig
	logger *slog.Logger
}

// NewPruner creates a pruner over the given store.
func NewPruner(store *Store, cfg *config.HistoryConfig) *Pruner {
	return &Pruner{
		store:  store,
		config: cfg,
		logger: slog.Default().With("component", "history.pruner"),
	}
}

// Prune runs one pruning cycle and returns the number of records deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var deleted int64

	if p.config.RetentionDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -p.config.RetentionDays)
		n, err := p.store.PruneBefore(ctx, cutoff)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}

	if p.config.MaxRecords > 0 {
		n, err := p.store.PruneToMax(ctx, p.config.MaxRecords)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}

	if deleted > 0 {
		p.logger.Info("pruned history records", "deleted", deleted)
	}
	return deleted, nil
}

// Scheduler runs the pruner on a cron schedule in server mode.
type Scheduler struct {
	pruner  *Pruner
	cron    *cron.Cron
	mu      sync.Mutex
	logger  *slog.Logger
	running bool
}

// NewScheduler creates a retention scheduler for the given pruner.
func NewScheduler(pruner *Pruner) *Scheduler {
	return &Scheduler{
		pruner: pruner,
		cron:   cron.New(),
		logger: slog.Default().With("component", "history.scheduler"),
	}
}

// Start begins scheduled pruning using the configured cron expression
// (e.g. "0 3 * * *" for daily at 3 AM). If the schedule is empty the
// scheduler does nothing. The scheduler stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := s.pruner.config.PruneSchedule
	if schedule == "" {
		s.logger.Info("prune schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}

	_, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.pruner.Prune(ctx); err != nil {
			s.logger.Error("scheduled pruning failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", schedule,
		"retention_days", s.pruner.config.RetentionDays,
		"max_records", s.pruner.config.MaxRecords,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts scheduled pruning. It waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("retention scheduler stopped")
}
