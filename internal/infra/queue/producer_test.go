package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/infra/queue"
)

// The payload must leave the publishing boundary already classified and with
// every contact field masked; raw PII never crosses the broker.
func TestNewLeadCapturedPayloadMasksAtTheBoundary(t *testing.T) {
	amount := 5000.0
	creditors := 3
	monthly := 250.0

	lead := &entity.Lead{
		ID:                 "lead-1",
		Name:               "Jane Doe",
		Email:              "jane.doe@example.com",
		Phone:              "5551234567",
		Source:             "Credit Card Debt",
		TotalDebtAmount:    &amount,
		NumberOfCreditors:  &creditors,
		MonthlyDebtPayment: &monthly,
		CreditScoreRange:   "650-699",
		Address:            "12 Main St",
		City:               "Austin",
		State:              "TX",
		Zipcode:            "78701",
		CreatedAt:          time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	payload := queue.NewLeadCapturedPayload(lead)

	assert.Equal(t, "lead-1", payload.LeadID)
	assert.Equal(t, "Credit Card Debt", payload.Source)
	assert.Equal(t, entity.TierHot, payload.Tier)
	assert.Equal(t, 100, payload.CompletionPercentage)
	assert.Equal(t, "ja***@example.com", payload.MaskedEmail)
	assert.Equal(t, "***-***-4567", payload.MaskedPhone)
	assert.Equal(t, "$5***", payload.MaskedDebtAmount)
	assert.Equal(t, lead.CreatedAt, payload.CapturedAt)

	// Nothing in the payload carries the raw values.
	assert.NotContains(t, payload.MaskedEmail, "jane.doe")
	assert.NotContains(t, payload.MaskedPhone, "555123")
	assert.NotContains(t, payload.MaskedDebtAmount, "5000")
}

func TestNewLeadCapturedPayloadSparseLead(t *testing.T) {
	lead := &entity.Lead{
		ID:     "lead-2",
		Name:   "John Roe",
		Source: "Personal Debt",
	}

	payload := queue.NewLeadCapturedPayload(lead)

	assert.Equal(t, entity.TierCold, payload.Tier)
	assert.Equal(t, 0, payload.CompletionPercentage)
	assert.Equal(t, "—", payload.MaskedEmail)
	assert.Equal(t, "—", payload.MaskedPhone)
	assert.Equal(t, "—", payload.MaskedDebtAmount)
}
