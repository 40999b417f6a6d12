package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Repo   LeadRepositoryInterface
	Events StatusEventRepositoryInterface
	Log    *zap.Logger
}

func NewUpdateLeadStatusUseCase(
	repo LeadRepositoryInterface,
	events StatusEventRepositoryInterface,
	log *zap.Logger,
) *UpdateLeadStatusUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UpdateLeadStatusUseCase{Repo: repo, Events: events, Log: log}
}

// Execute applies an advisory status transition. There is no transition
// table: any known status may follow any other. The update and its history
// event are written under a compensating transaction that reverts the status
// if the event insert fails.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) (*entity.Lead, error) {
	if !entity.ValidStatus(input.Status) {
		return nil, &DomainError{
			Code:    "INVALID_STATUS",
			Message: "unknown status: " + input.Status,
		}
	}

	lead, err := uc.Repo.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    "LEAD_NOT_FOUND",
				Message: "no lead with id " + input.LeadID,
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}

	previous := lead.Status
	now := time.Now().UTC()

	txn := NewTransaction(uc.Log)

	txn.AddOperation("update_status", func(ctx context.Context) error {
		return uc.Repo.UpdateStatus(ctx, lead.ID, input.Status)
	})
	txn.AddCompensation("revert_status", func(ctx context.Context) error {
		return uc.Repo.UpdateStatus(ctx, lead.ID, previous)
	})

	txn.AddOperation("record_status_event", func(ctx context.Context) error {
		return uc.Events.Create(ctx, &entity.StatusEvent{
			ID:         uuid.New().String(),
			LeadID:     lead.ID,
			FromStatus: previous,
			ToStatus:   input.Status,
			CreatedAt:  now,
		})
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update status: " + err.Error(),
		}
	}

	lead.Status = input.Status
	lead.UpdatedAt = now
	return lead, nil
}
