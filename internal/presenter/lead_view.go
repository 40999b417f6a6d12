package presenter

import (
	"time"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

// LeadView is the display-safe shape of a lead handed to agents: contact and
// monetary fields are irreversibly masked, and the triage classification is
// recomputed from the current record. Raw leads never leave the server on
// read paths.
type LeadView struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	AlternatePhone       string    `json:"alternate_phone"`
	DebtCategory         string    `json:"debt_category,omitempty"`
	DebtTypes            []string  `json:"debt_types,omitempty"`
	Source               string    `json:"source"`
	TotalDebtAmount      string    `json:"total_debt_amount"`
	NumberOfCreditors    *int      `json:"number_of_creditors,omitempty"`
	MonthlyDebtPayment   string    `json:"monthly_debt_payment"`
	CreditScoreRange     string    `json:"credit_score_range,omitempty"`
	City                 string    `json:"city,omitempty"`
	State                string    `json:"state,omitempty"`
	Status               string    `json:"status"`
	CompletionPercentage int       `json:"completion_percentage"`
	Category             string    `json:"category"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewLeadView builds the masked, classified view of a lead. Street address,
// zipcode and free-form notes are withheld from the view entirely.
func NewLeadView(l *entity.Lead) LeadView {
	c := entity.Classify(l)

	return LeadView{
		ID:                   l.ID,
		Name:                 l.Name,
		Email:                MaskEmail(l.Email),
		Phone:                MaskPhone(l.Phone),
		AlternatePhone:       MaskPhone(l.AlternatePhone),
		DebtCategory:         l.DebtCategory,
		DebtTypes:            l.DebtTypes,
		Source:               l.Source,
		TotalDebtAmount:      MaskAmount(l.TotalDebtAmount),
		NumberOfCreditors:    l.NumberOfCreditors,
		MonthlyDebtPayment:   MaskAmount(l.MonthlyDebtPayment),
		CreditScoreRange:     l.CreditScoreRange,
		City:                 l.City,
		State:                l.State,
		Status:               l.Status,
		CompletionPercentage: c.CompletionPercentage,
		Category:             c.Category,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

// NewLeadViews maps a page of leads, always returning a non-nil slice so an
// empty page serializes as [] rather than null.
func NewLeadViews(leads []*entity.Lead) []LeadView {
	views := make([]LeadView, 0, len(leads))
	for _, l := range leads {
		views = append(views, NewLeadView(l))
	}
	return views
}
