package usecase

import (
	"context"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Lead, int, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type StatusEventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.StatusEvent) error
	ListByLead(ctx context.Context, leadID string) ([]*entity.StatusEvent, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
