package payroll

import (
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Proration is the fraction of a 30 pay-day month an employee is entitled to
// pay for, given their hire date.
type Proration struct {
	WorkRatio      decimal.Decimal
	IsPartialMonth bool
	DaysEntitled   int
}

// ProrationFor applies the statutory 30 pay-day convention: day-of-month
// positions come from the real calendar, entitlement is always out of 30.
// A missing hire date means a full month.
func ProrationFor(hireDate *time.Time, period payroll.Period) Proration {
	if hireDate == nil {
		return fullMonthProration()
	}

	hired := time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)

	if hired.Before(period.Start) {
		return fullMonthProration()
	}

	if hired.After(period.End) {
		// Not yet active in this period.
		return Proration{
			WorkRatio:      decimal.Zero,
			IsPartialMonth: true,
			DaysEntitled:   0,
		}
	}

	// Hired mid-period: entitled from hire day through the real last
	// calendar day, capped at the 30 pay-day convention so an employee
	// hired on the 1st of a 31-day month still gets a full ratio.
	daysEntitled := period.End.Day() - hired.Day() + 1
	if daysEntitled > payroll.PayDaysPerMonth {
		daysEntitled = payroll.PayDaysPerMonth
	}

	ratio := decimal.NewFromInt(int64(daysEntitled)).
		Div(decimal.NewFromInt(payroll.PayDaysPerMonth))

	return Proration{
		WorkRatio:      clampRatio(ratio),
		IsPartialMonth: true,
		DaysEntitled:   daysEntitled,
	}
}

func fullMonthProration() Proration {
	return Proration{
		WorkRatio:      decimal.NewFromInt(1),
		IsPartialMonth: false,
		DaysEntitled:   payroll.PayDaysPerMonth,
	}
}

// clampRatio keeps a work ratio inside [0, 1]. Out-of-range values are
// impossible by construction, but every caller clamps anyway.
func clampRatio(ratio decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if ratio.IsNegative() {
		return decimal.Zero
	}
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}
