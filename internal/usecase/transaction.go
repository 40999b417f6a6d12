package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Transaction runs a sequence of repository writes with per-step
// compensations. Operation i pairs with compensation i; when step i fails,
// compensations i-1..0 run in reverse. Not a real database transaction, but
// enough to keep the lead and its history table consistent.
type Transaction struct {
	operations    []step
	compensations []step
	log           *zap.Logger
}

type step struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction(log *zap.Logger) *Transaction {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transaction{log: log}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, step{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, step{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation %q failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	for i := failedAt - 1; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.Fn(ctx); err != nil {
			// Compensation failure leaves the store inconsistent; log loudly
			// and move on, operators have to reconcile by hand.
			t.log.Error("compensation failed",
				zap.String("compensation", comp.Name),
				zap.Error(err),
			)
		}
	}
}
