package usecase

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput enforces the few hard rules of intake: name is the
// only required field, and closed-vocabulary fields must be in-vocabulary
// when present. Numeric fields are deliberately NOT validated here; garbage
// numbers are omitted during parsing rather than rejected.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	if input.DebtCategory != "" && !entity.ValidDebtCategory(input.DebtCategory) {
		errors = append(errors, ValidationError{"debt_category", "must be secured or unsecured"})
	}

	if input.CreditScoreRange != "" && !entity.ValidCreditScoreRange(input.CreditScoreRange) {
		errors = append(errors, ValidationError{"credit_score_range", "is not a recognized band"})
	}

	return errors
}

// parseOptionalAmount returns nil for empty, non-numeric, or negative input.
// An omitted value is stored as NULL, never as zero or garbage.
func parseOptionalAmount(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// parseOptionalCount is parseOptionalAmount for non-negative integers.
func parseOptionalCount(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
