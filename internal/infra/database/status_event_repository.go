package database

import (
	"context"
	"database/sql"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

type StatusEventRepository struct {
	DB *sql.DB
}

func NewStatusEventRepository(db *sql.DB) *StatusEventRepository {
	return &StatusEventRepository{DB: db}
}

func (r *StatusEventRepository) Create(ctx context.Context, event *entity.StatusEvent) error {
	query := `
		INSERT INTO lead_status_events (id, lead_id, from_status, to_status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		event.ID,
		event.LeadID,
		nullString(event.FromStatus),
		event.ToStatus,
		event.CreatedAt,
	)
	return err
}

func (r *StatusEventRepository) ListByLead(ctx context.Context, leadID string) ([]*entity.StatusEvent, error) {
	query := `
		SELECT id, lead_id, from_status, to_status, created_at
		FROM lead_status_events
		WHERE lead_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*entity.StatusEvent
	for rows.Next() {
		var (
			event entity.StatusEvent
			from  sql.NullString
		)
		if err := rows.Scan(&event.ID, &event.LeadID, &from, &event.ToStatus, &event.CreatedAt); err != nil {
			return nil, err
		}
		event.FromStatus = from.String
		events = append(events, &event)
	}
	return events, rows.Err()
}
