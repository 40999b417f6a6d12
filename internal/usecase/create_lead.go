package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Events StatusEventRepositoryInterface
	Queue  QueueProducerInterface
	Log    *zap.Logger
}

func NewCreateLeadUseCase(
	repo LeadRepositoryInterface,
	events StatusEventRepositoryInterface,
	producer QueueProducerInterface,
	log *zap.Logger,
) *CreateLeadUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateLeadUseCase{
		Repo:   repo,
		Events: events,
		Queue:  producer,
		Log:    log,
	}
}

// Execute normalizes and persists one intake submission. The source label is
// always derived server-side; the lead and its initial status event are
// written under a compensating transaction so the history table never drifts
// from the leads table.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		msg := "validation failed: "
		for _, e := range validationErrors {
			msg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: strings.TrimSuffix(msg, ", "),
		}
	}

	now := time.Now().UTC()
	debtTypes := entity.FilterDebtTypes(input.DebtCategory, input.DebtTypes)

	lead := &entity.Lead{
		ID:                 uuid.New().String(),
		Name:               strings.TrimSpace(input.Name),
		Email:              strings.TrimSpace(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		AlternatePhone:     strings.TrimSpace(input.AlternatePhone),
		DebtCategory:       input.DebtCategory,
		DebtTypes:          debtTypes,
		Source:             entity.NormalizeSource(input.DebtCategory, debtTypes),
		TotalDebtAmount:    parseOptionalAmount(input.TotalDebtAmount),
		NumberOfCreditors:  parseOptionalCount(input.NumberOfCreditors),
		MonthlyDebtPayment: parseOptionalAmount(input.MonthlyDebtPayment),
		CreditScoreRange:   input.CreditScoreRange,
		Address:            strings.TrimSpace(input.Address),
		City:               strings.TrimSpace(input.City),
		State:              strings.TrimSpace(input.State),
		Zipcode:            strings.TrimSpace(input.Zipcode),
		Notes:              input.Notes,
		Status:             entity.StatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	txn := NewTransaction(uc.Log)

	txn.AddOperation("create_lead", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, lead)
	})
	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, lead.ID)
	})

	txn.AddOperation("record_initial_status", func(ctx context.Context) error {
		return uc.Events.Create(ctx, &entity.StatusEvent{
			ID:        uuid.New().String(),
			LeadID:    lead.ID,
			ToStatus:  entity.StatusNew,
			CreatedAt: now,
		})
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, &DomainError{
				Code:    "DUPLICATE_EMAIL",
				Message: entity.ErrDuplicateEmail.Error(),
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// The broker is best-effort: a dead RabbitMQ must not fail the intake.
	if uc.Queue != nil {
		payload := queue.NewLeadCapturedPayload(lead)
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			uc.Log.Warn("lead captured event not published",
				zap.String("lead_id", lead.ID),
				zap.Error(err),
			)
		}
	}

	return lead, nil
}
