package presenter

import (
	"strconv"
	"strings"
)

// Absent is the sentinel shown whenever a sensitive field has no value.
// Zero amounts count as absent on purpose: a 0 on the form means the agent
// never captured the figure.
const Absent = "—"

// MaskEmail keeps at most the first 2 characters of the local part and the
// full domain. One-way; there is no unmask operation anywhere in the system.
func MaskEmail(email string) string {
	if email == "" {
		return Absent
	}

	local, domain := email, ""
	if at := strings.Index(email, "@"); at >= 0 {
		local, domain = email[:at], email[at+1:]
	}

	if len(local) <= 2 {
		return local + "***@" + domain
	}
	return local[:2] + "***@" + domain
}

// MaskPhone keeps only the last 4 digits. Formatting characters are stripped
// before truncation so "+1 (555) 123-4567" and "5551234567" mask identically.
func MaskPhone(phone string) string {
	if phone == "" {
		return Absent
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) <= 4 {
		return "***-****"
	}
	return "***-***-" + d[len(d)-4:]
}

// MaskAmount keeps only the leading digit of the stringified value, so a
// viewer can gauge the order of magnitude without seeing the figure.
func MaskAmount(amount *float64) string {
	if amount == nil || *amount == 0 {
		return Absent
	}

	s := strconv.FormatFloat(*amount, 'f', -1, 64)
	if len(s) <= 3 {
		return "$***"
	}
	return "$" + s[:1] + "***"
}
