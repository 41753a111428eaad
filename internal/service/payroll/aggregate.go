package payroll

import (
	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
)

// CountWorkingDays counts attendance records that qualify as worked days
// (present or late). Other statuses neither count nor deduct here; violation
// deductions live in their own ledger.
func CountWorkingDays(records []attendance.Record) int {
	days := 0
	for _, rec := range records {
		if rec.Status.CountsAsWorkingDay() {
			days++
		}
	}
	return days
}

// SumViolationDeductions totals the attendance-violation ledger entries.
func SumViolationDeductions(records []deduction.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return total
}

// SumLoanInstallments totals pending installments. Paid or waived
// installments never reach the current run.
func SumLoanInstallments(installments []loan.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range installments {
		if inst.Status != loan.InstallmentStatusPending {
			continue
		}
		total = total.Add(inst.Amount)
	}
	return total
}
