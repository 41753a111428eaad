package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive calendar date range covering one whole month.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the period, boundaries included.
// Comparison is on the calendar day, any time-of-day component is ignored.
func (p Period) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.Start) && !day.After(p.End)
}

// PayDaysPerMonth is the statutory pay-day convention: every month counts as
// exactly 30 days for proration, regardless of calendar length.
const PayDaysPerMonth = 30

// PayrollLine is one employee's computed result for a reference month. It is
// derived on every run and never persisted; recomputation is the only update
// path.
type PayrollLine struct {
	EmployeeID   string
	EmployeeName string

	// Proration
	WorkRatio      decimal.Decimal
	IsPartialMonth bool
	DaysEntitled   int

	// Attendance
	WorkingDays int

	// Earnings
	BaseSalary              decimal.Decimal
	HousingAllowance        decimal.Decimal
	TransportationAllowance decimal.Decimal
	OtherAllowances         decimal.Decimal
	FullGrossSalary         decimal.Decimal
	GrossSalary             decimal.Decimal

	// Deductions
	IsSaudi              bool
	GosiDeduction        decimal.Decimal
	AttendanceDeductions decimal.Decimal
	LoanDeduction        decimal.Decimal
	TotalDeductions      decimal.Decimal

	NetSalary decimal.Decimal
}

// PayrollTotals is the fold of all lines in a run.
type PayrollTotals struct {
	EmployeeCount           int
	BaseSalary              decimal.Decimal
	HousingAllowance        decimal.Decimal
	TransportationAllowance decimal.Decimal
	GrossSalary             decimal.Decimal
	GosiDeduction           decimal.Decimal
	AttendanceDeductions    decimal.Decimal
	LoanDeduction           decimal.Decimal
	TotalDeductions         decimal.Decimal
	NetSalary               decimal.Decimal
}

// PayrollRun is the full result of one compute_payroll invocation.
type PayrollRun struct {
	Period Period
	Lines  []PayrollLine
	Totals PayrollTotals
}
