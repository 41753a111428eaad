package payroll

import (
	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildLine composes one employee's payroll line from the already-computed
// parts. Pure, no I/O. Gross pay is rounded to the whole currency unit when
// prorated; net pay is not rounded beyond its inputs.
func BuildLine(
	emp employee.Employee,
	pr Proration,
	workingDays int,
	gosiDeduction decimal.Decimal,
	attendanceDeductions decimal.Decimal,
	loanDeduction decimal.Decimal,
) payroll.PayrollLine {
	fullGross := emp.BaseSalary.
		Add(emp.HousingAllowance).
		Add(emp.TransportationAllowance).
		Add(emp.OtherAllowances)

	ratio := clampRatio(pr.WorkRatio)

	gross := fullGross
	if pr.IsPartialMonth {
		gross = fullGross.Mul(ratio).Round(0)
	}

	totalDeductions := gosiDeduction.Add(attendanceDeductions).Add(loanDeduction)

	return payroll.PayrollLine{
		EmployeeID:              emp.ID,
		EmployeeName:            emp.FullName,
		WorkRatio:               ratio,
		IsPartialMonth:          pr.IsPartialMonth,
		DaysEntitled:            pr.DaysEntitled,
		WorkingDays:             workingDays,
		BaseSalary:              emp.BaseSalary,
		HousingAllowance:        emp.HousingAllowance,
		TransportationAllowance: emp.TransportationAllowance,
		OtherAllowances:         emp.OtherAllowances,
		FullGrossSalary:         fullGross,
		GrossSalary:             gross,
		IsSaudi:                 IsSaudi(emp),
		GosiDeduction:           gosiDeduction,
		AttendanceDeductions:    attendanceDeductions,
		LoanDeduction:           loanDeduction,
		TotalDeductions:         totalDeductions,
		NetSalary:               gross.Sub(totalDeductions),
	}
}
