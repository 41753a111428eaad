package payroll

import (
	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
)

// FoldTotals sums every line of a run into report totals. Pure fold.
func FoldTotals(lines []payroll.PayrollLine) payroll.PayrollTotals {
	totals := payroll.PayrollTotals{EmployeeCount: len(lines)}
	for _, line := range lines {
		totals.BaseSalary = totals.BaseSalary.Add(line.BaseSalary)
		totals.HousingAllowance = totals.HousingAllowance.Add(line.HousingAllowance)
		totals.TransportationAllowance = totals.TransportationAllowance.Add(line.TransportationAllowance)
		totals.GrossSalary = totals.GrossSalary.Add(line.GrossSalary)
		totals.GosiDeduction = totals.GosiDeduction.Add(line.GosiDeduction)
		totals.AttendanceDeductions = totals.AttendanceDeductions.Add(line.AttendanceDeductions)
		totals.LoanDeduction = totals.LoanDeduction.Add(line.LoanDeduction)
		totals.TotalDeductions = totals.TotalDeductions.Add(line.TotalDeductions)
		totals.NetSalary = totals.NetSalary.Add(line.NetSalary)
	}
	return totals
}
