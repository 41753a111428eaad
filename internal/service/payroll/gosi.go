package payroll

import (
	"strings"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// GosiRateBracket maps a GOSI registration date onto a contribution rate.
// The bracket with the latest EffectiveFrom not after the registration date
// wins.
type GosiRateBracket struct {
	EffectiveFrom time.Time
	Rate          decimal.Decimal
}

// GosiRatePolicy reflects the statutory contribution schedule. The rate
// changed for registrations effective 2024-07-03; the comparison is on the
// registration date, not on the pay period. Future rate changes are a new
// bracket here, not a code change.
var GosiRatePolicy = []GosiRateBracket{
	{EffectiveFrom: time.Time{}, Rate: decimal.RequireFromString("0.0975")},
	{EffectiveFrom: time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC), Rate: decimal.RequireFromString("0.1025")},
}

// GosiSalaryCap is the statutory ceiling on the contributable salary base.
var GosiSalaryCap = decimal.NewFromInt(45000)

// Employees with no recorded registration date are assumed registered before
// the rate change, so the older (lower) rate applies.
var defaultGosiRegistrationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsSaudi reports whether the employee contributes under the Saudi GOSI
// scheme, either by nationality or by an explicit gosi_type override.
func IsSaudi(emp employee.Employee) bool {
	if emp.GosiType != nil && strings.EqualFold(*emp.GosiType, employee.GosiTypeSaudi) {
		return true
	}
	nationality := strings.ToLower(strings.TrimSpace(emp.Nationality))
	return strings.Contains(nationality, "saudi")
}

// GosiRateFor selects the contribution rate for a registration date.
func GosiRateFor(registrationDate time.Time) decimal.Decimal {
	rate := GosiRatePolicy[0].Rate
	for _, bracket := range GosiRatePolicy {
		if !registrationDate.Before(bracket.EffectiveFrom) {
			rate = bracket.Rate
		}
	}
	return rate
}

// GosiDeductionFor computes the statutory insurance deduction: the prorated
// base salary plus housing allowance, capped at GosiSalaryCap, times the
// registration-date rate, rounded to 2 decimals. Non-Saudi employees pay
// nothing.
func GosiDeductionFor(emp employee.Employee, pr Proration) decimal.Decimal {
	if !IsSaudi(emp) {
		return decimal.Zero
	}

	base := emp.BaseSalary
	housing := emp.HousingAllowance
	if pr.IsPartialMonth {
		ratio := clampRatio(pr.WorkRatio)
		base = base.Mul(ratio).Round(0)
		housing = housing.Mul(ratio).Round(0)
	}

	gosiBase := base.Add(housing)
	if gosiBase.GreaterThan(GosiSalaryCap) {
		gosiBase = GosiSalaryCap
	}

	registered := defaultGosiRegistrationDate
	if emp.GosiRegistrationDate != nil {
		registered = *emp.GosiRegistrationDate
	}

	return gosiBase.Mul(GosiRateFor(registered)).Round(2)
}
