package payroll

import (
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
)

// ComputeInput carries everything a payroll run depends on. The caller owns
// fetching and caching; the calculator owns only the transform.
type ComputeInput struct {
	ReferenceMonth time.Time
	Employees      []employee.Employee
	Attendance     []attendance.Record
	Deductions     []deduction.Record
	Installments   []loan.Installment
}

// Calculator turns a reference month and the four raw datasets into a
// payroll run. It holds no state: computing the same input twice yields an
// identical run.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute derives one line per employee and folds the report totals.
// Line order follows the order of the input roster.
func (c *Calculator) Compute(in ComputeInput) payroll.PayrollRun {
	period := ResolvePeriod(in.ReferenceMonth)

	attendanceByEmployee := make(map[string][]attendance.Record)
	for _, rec := range in.Attendance {
		if !period.Contains(rec.WorkDate) {
			continue
		}
		attendanceByEmployee[rec.EmployeeID] = append(attendanceByEmployee[rec.EmployeeID], rec)
	}

	deductionsByEmployee := make(map[string][]deduction.Record)
	for _, rec := range in.Deductions {
		if !period.Contains(rec.DeductionDate) {
			continue
		}
		deductionsByEmployee[rec.EmployeeID] = append(deductionsByEmployee[rec.EmployeeID], rec)
	}

	installmentsByEmployee := make(map[string][]loan.Installment)
	for _, inst := range in.Installments {
		if !period.Contains(inst.DueDate) {
			continue
		}
		installmentsByEmployee[inst.EmployeeID] = append(installmentsByEmployee[inst.EmployeeID], inst)
	}

	lines := make([]payroll.PayrollLine, 0, len(in.Employees))
	for _, emp := range in.Employees {
		if emp.IsPayrollExcluded {
			continue
		}

		pr := ProrationFor(emp.HireDate, period)
		gosi := GosiDeductionFor(emp, pr)
		workingDays := CountWorkingDays(attendanceByEmployee[emp.ID])
		attendanceDeductions := SumViolationDeductions(deductionsByEmployee[emp.ID])
		loanDeduction := SumLoanInstallments(installmentsByEmployee[emp.ID])

		lines = append(lines, BuildLine(emp, pr, workingDays, gosi, attendanceDeductions, loanDeduction))
	}

	return payroll.PayrollRun{
		Period: period,
		Lines:  lines,
		Totals: FoldTotals(lines),
	}
}
