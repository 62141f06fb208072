package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/api/metrics"
	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// refreshStatus is the shared lazy-refresh step: derive the status for today
// and write it back only when it differs from the stored value. Every read
// path that materialises a schedule runs through here.
func refreshStatus(ctx context.Context, repo ports.ScheduleRepository, sched *domain.Schedule, today time.Time, logger zerolog.Logger) {
	derived := sched.DeriveStatus(today)
	if derived == sched.Status {
		return
	}
	prev := sched.Status
	sched.Status = derived
	if err := repo.UpdateStatus(ctx, sched.ID, derived, sched.CompletedAt); err != nil {
		logger.Warn().Err(err).Str("schedule_id", sched.ID).Msg("failed to persist derived status")
		return
	}
	metrics.StatusTransitionsTotal.WithLabelValues(string(prev), string(derived)).Inc()
}

// refreshAll runs refreshStatus over a slice.
func refreshAll(ctx context.Context, repo ports.ScheduleRepository, scheds []*domain.Schedule, today time.Time, logger zerolog.Logger) {
	for _, sched := range scheds {
		refreshStatus(ctx, repo, sched, today, logger)
	}
}
