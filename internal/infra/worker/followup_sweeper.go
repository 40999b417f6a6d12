package worker

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// FollowUpSweeper periodically flags leads parked in follow-up for too long
// by bumping them back onto the dashboard: their updated_at is touched so
// they resurface at the top of the triage list.
type FollowUpSweeper struct {
	db           *sql.DB
	staleAfter   time.Duration
	tickInterval time.Duration
	log          *zap.Logger
}

func NewFollowUpSweeper(db *sql.DB, log *zap.Logger) *FollowUpSweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &FollowUpSweeper{
		db:           db,
		staleAfter:   72 * time.Hour,
		tickInterval: 1 * time.Hour,
		log:          log,
	}
}

func (w *FollowUpSweeper) Start(ctx context.Context) {
	w.log.Info("follow-up sweeper started",
		zap.Duration("stale_after", w.staleAfter),
		zap.Duration("tick", w.tickInterval),
	)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("follow-up sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *FollowUpSweeper) sweep(ctx context.Context) {
	query := `
		UPDATE leads
		SET updated_at = NOW()
		WHERE
			status = 'follow-up'
			AND updated_at < NOW() - INTERVAL '72 hours'
		RETURNING id, name, updated_at
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		w.log.Error("failed to sweep stale follow-ups", zap.Error(err))
		return
	}
	defer rows.Close()

	resurfaced := 0
	for rows.Next() {
		var id, name string
		var updatedAt time.Time
		if err := rows.Scan(&id, &name, &updatedAt); err != nil {
			w.log.Warn("failed to scan stale follow-up row", zap.Error(err))
			continue
		}
		w.log.Info("stale follow-up resurfaced", zap.String("lead_id", id), zap.String("name", name))
		resurfaced++
	}

	if resurfaced > 0 {
		w.log.Info("follow-up sweep complete", zap.Int("resurfaced", resurfaced))
	}
}
