package entity

// Priority tiers derived from record completeness. Not to be confused with
// DebtCategory (secured/unsecured), which is a property of the debt itself.
const (
	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"
)

// Tier cut points over the completion percentage. Treat these as a versioned
// constant: dashboards and reports depend on the boundaries staying put.
const (
	hotThreshold  = 70
	warmThreshold = 40
)

type Classification struct {
	CompletionPercentage int    `json:"completion_percentage"`
	Category             string `json:"category"`
}

// Classify scores how complete a lead record is and buckets it into a
// priority tier. The checklist is 10 equally weighted fields (10% each):
// email, phone, total debt, creditor count, monthly payment, credit score
// band and the four address fields. Pure and idempotent; derived values are
// recomputed on every read, never stored.
func Classify(l *Lead) Classification {
	checklist := []bool{
		l.Email != "",
		l.Phone != "",
		l.TotalDebtAmount != nil,
		l.NumberOfCreditors != nil,
		l.MonthlyDebtPayment != nil,
		l.CreditScoreRange != "",
		l.Address != "",
		l.City != "",
		l.State != "",
		l.Zipcode != "",
	}

	filled := 0
	for _, present := range checklist {
		if present {
			filled++
		}
	}
	pct := filled * 100 / len(checklist)

	category := TierCold
	switch {
	case pct >= hotThreshold:
		category = TierHot
	case pct >= warmThreshold:
		category = TierWarm
	}

	return Classification{
		CompletionPercentage: pct,
		Category:             category,
	}
}
