package usecase

import "github.com/PrinceSD2/lms-sub001/internal/entity"

// CreateLeadInput mirrors the intake form. Numeric-looking fields arrive as
// strings exactly as typed; parsing (and silent omission of garbage) happens
// in the use case, never in the handler.
type CreateLeadInput struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	AlternatePhone     string   `json:"alternate_phone"`
	DebtCategory       string   `json:"debt_category"`
	DebtTypes          []string `json:"debt_types"`
	TotalDebtAmount    string   `json:"total_debt_amount"`
	NumberOfCreditors  string   `json:"number_of_creditors"`
	MonthlyDebtPayment string   `json:"monthly_debt_payment"`
	CreditScoreRange   string   `json:"credit_score_range"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Zipcode            string   `json:"zipcode"`
	Notes              string   `json:"notes"`
}

type ListLeadsInput struct {
	Page    int
	PerPage int
}

type ListLeadsOutput struct {
	Leads   []*entity.Lead
	Total   int
	Page    int
	PerPage int
}

type UpdateLeadStatusInput struct {
	LeadID string `json:"-"`
	Status string `json:"status"`
}
