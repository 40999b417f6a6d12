package entity

// SourceFallback is used whenever neither the debt types nor the category
// give us anything better.
const SourceFallback = "Personal Debt"

// sourceByDebtType maps a specific debt type to the canonical source label
// used by reporting. The mapping is intentionally many-to-one (e.g. both
// "Title Loans" and "Secured Personal Loans" roll up to "Secured Debt").
var sourceByDebtType = map[string]string{
	// secured
	"Mortgage Loans":         "Mortgage Debt",
	"Auto Loans":             "Auto Loan Debt",
	"Secured Personal Loans": "Secured Debt",
	"Home Equity Loans":      "Mortgage Debt",
	"Title Loans":            "Secured Debt",

	// unsecured
	"Credit Cards":                 "Credit Card Debt",
	"Instalment Loans (Unsecured)": "Personal Loan Debt",
	"Medical Bills":                "Medical Debt",
	"Utility Bills":                "Utility Debt",
	"Payday Loans":                 "Payday Loan Debt",
	"Student Loans (private loan)": "Student Loan Debt",
	"Store/Charge Cards":           "Credit Card Debt",
	"Overdraft Balances":           "Overdraft Debt",
	"Business Loans (unsecured)":   "Business Debt",
	"Collection Accounts":          "Collections Debt",
}

// sourceByCategory is the fallback when the agent selected a category but no
// specific debt types.
var sourceByCategory = map[string]string{
	DebtCategorySecured:   "Secured Debt",
	DebtCategoryUnsecured: "Unsecured Debt",
}

// NormalizeSource derives the canonical source label for a lead from its raw
// debt-type selection. The first selected type wins (selection order as the
// agent picked it, not sorted). Total: unknown input degrades to the generic
// fallback instead of failing.
func NormalizeSource(debtCategory string, debtTypes []string) string {
	if len(debtTypes) > 0 {
		if source, ok := sourceByDebtType[debtTypes[0]]; ok {
			return source
		}
		return SourceFallback
	}
	if source, ok := sourceByCategory[debtCategory]; ok {
		return source
	}
	return SourceFallback
}
