package entity

import (
	"errors"
	"strings"
	"time"
)

// Debt categories
const (
	DebtCategorySecured   = "secured"
	DebtCategoryUnsecured = "unsecured"
)

// Lead lifecycle statuses. The field is advisory triage metadata; any
// transition is legal.
const (
	StatusNew           = "new"
	StatusInterested    = "interested"
	StatusNotInterested = "not-interested"
	StatusSuccessful    = "successful"
	StatusFollowUp      = "follow-up"
)

var ErrDuplicateEmail = errors.New("a lead with this email already exists")
var ErrLeadNotFound = errors.New("lead not found")

// debtTypeVocabulary is the closed set of debt types an agent can pick,
// per category.
var debtTypeVocabulary = map[string][]string{
	DebtCategorySecured: {
		"Mortgage Loans",
		"Auto Loans",
		"Secured Personal Loans",
		"Home Equity Loans",
		"Title Loans",
	},
	DebtCategoryUnsecured: {
		"Credit Cards",
		"Instalment Loans (Unsecured)",
		"Medical Bills",
		"Utility Bills",
		"Payday Loans",
		"Student Loans (private loan)",
		"Store/Charge Cards",
		"Overdraft Balances",
		"Business Loans (unsecured)",
		"Collection Accounts",
	},
}

// creditScoreRanges is the closed band vocabulary (Poor through Excellent).
var creditScoreRanges = []string{
	"300-549",
	"550-649",
	"650-699",
	"700-749",
	"750-850",
}

type Lead struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	AlternatePhone     string    `json:"alternate_phone,omitempty"`
	DebtCategory       string    `json:"debt_category,omitempty"`
	DebtTypes          []string  `json:"debt_types,omitempty"`
	Source             string    `json:"source"`
	TotalDebtAmount    *float64  `json:"total_debt_amount,omitempty"`
	NumberOfCreditors  *int      `json:"number_of_creditors,omitempty"`
	MonthlyDebtPayment *float64  `json:"monthly_debt_payment,omitempty"`
	CreditScoreRange   string    `json:"credit_score_range,omitempty"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	Zipcode            string    `json:"zipcode,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StatusEvent records one advisory status transition on a lead.
type StatusEvent struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"lead_id"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}
	if l.Source == "" {
		return errors.New("source must be set before persisting")
	}
	return nil
}

func ValidDebtCategory(category string) bool {
	_, ok := debtTypeVocabulary[category]
	return ok
}

// ValidDebtType reports whether the type belongs to the category's vocabulary.
func ValidDebtType(category, debtType string) bool {
	for _, t := range debtTypeVocabulary[category] {
		if t == debtType {
			return true
		}
	}
	return false
}

// FilterDebtTypes drops every selection that is not in the category's
// vocabulary, preserving the agent's selection order. A category change on
// the form clears the selection, so out-of-category values only show up on
// stale submissions; they are dropped rather than rejected.
func FilterDebtTypes(category string, debtTypes []string) []string {
	var kept []string
	for _, t := range debtTypes {
		if ValidDebtType(category, t) {
			kept = append(kept, t)
		}
	}
	return kept
}

func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusInterested, StatusNotInterested, StatusSuccessful, StatusFollowUp:
		return true
	}
	return false
}

func ValidCreditScoreRange(band string) bool {
	for _, r := range creditScoreRanges {
		if r == band {
			return true
		}
	}
	return false
}
