package presenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
	"github.com/PrinceSD2/lms-sub001/internal/presenter"
)

func sampleLead() *entity.Lead {
	return &entity.Lead{
		ID:              "lead-1",
		Name:            "Jane Doe",
		Email:           "jane.doe@example.com",
		Phone:           "5551234567",
		DebtCategory:    entity.DebtCategoryUnsecured,
		DebtTypes:       []string{"Credit Cards"},
		Source:          "Credit Card Debt",
		TotalDebtAmount: func() *float64 { v := 5000.0; return &v }(),
		Address:         "12 Main St",
		Zipcode:         "78701",
		Notes:           "called twice, prefers evenings",
		Status:          entity.StatusNew,
	}
}

func TestNewLeadViewMasksSensitiveFields(t *testing.T) {
	view := presenter.NewLeadView(sampleLead())

	assert.Equal(t, "ja***@example.com", view.Email)
	assert.Equal(t, "***-***-4567", view.Phone)
	assert.Equal(t, "$5***", view.TotalDebtAmount)
	assert.Equal(t, "—", view.AlternatePhone)
	assert.Equal(t, "—", view.MonthlyDebtPayment)
}

func TestNewLeadViewCarriesClassification(t *testing.T) {
	view := presenter.NewLeadView(sampleLead())

	// email, phone, debt amount, address, zipcode == 5 of 10 checklist fields.
	assert.Equal(t, 50, view.CompletionPercentage)
	assert.Equal(t, entity.TierWarm, view.Category)
	assert.Equal(t, "Credit Card Debt", view.Source)
	assert.Equal(t, entity.StatusNew, view.Status)
}

func TestNewLeadViewDoesNotMutateLead(t *testing.T) {
	lead := sampleLead()
	presenter.NewLeadView(lead)

	assert.Equal(t, "jane.doe@example.com", lead.Email)
	assert.Equal(t, "5551234567", lead.Phone)
	assert.Equal(t, 5000.0, *lead.TotalDebtAmount)
}

func TestNewLeadViewsEmptyPageIsEmptySlice(t *testing.T) {
	views := presenter.NewLeadViews(nil)
	assert.NotNil(t, views)
	assert.Len(t, views, 0)
}
