package payroll

import (
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ComputePayrollRequest carries the month selected in the dashboard.
// An empty month means the current month.
type ComputePayrollRequest struct {
	Month string `json:"month"` // "YYYY-MM"
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReferenceMonth resolves the requested month. Validate must have passed.
func (r *ComputePayrollRequest) ReferenceMonth(now time.Time) time.Time {
	if r.Month == "" {
		return now
	}
	month, _ := validator.IsValidMonth(r.Month)
	return month
}

type PayrollLineResponse struct {
	EmployeeID              string          `json:"employee_id"`
	EmployeeName            string          `json:"employee_name"`
	WorkRatio               decimal.Decimal `json:"work_ratio"`
	IsPartialMonth          bool            `json:"is_partial_month"`
	DaysEntitled            int             `json:"days_entitled"`
	WorkingDays             int             `json:"working_days"`
	BaseSalary              decimal.Decimal `json:"base_salary"`
	HousingAllowance        decimal.Decimal `json:"housing_allowance"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`
	OtherAllowances         decimal.Decimal `json:"other_allowances"`
	FullGrossSalary         decimal.Decimal `json:"full_gross_salary"`
	GrossSalary             decimal.Decimal `json:"gross_salary"`
	IsSaudi                 bool            `json:"is_saudi"`
	GosiDeduction           decimal.Decimal `json:"gosi_deduction"`
	AttendanceDeductions    decimal.Decimal `json:"attendance_deductions"`
	LoanDeduction           decimal.Decimal `json:"loan_deduction"`
	TotalDeductions         decimal.Decimal `json:"total_deductions"`
	NetSalary               decimal.Decimal `json:"net_salary"`
}

type PayrollTotalsResponse struct {
	EmployeeCount           int             `json:"employee_count"`
	BaseSalary              decimal.Decimal `json:"base_salary"`
	HousingAllowance        decimal.Decimal `json:"housing_allowance"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`
	GrossSalary             decimal.Decimal `json:"gross_salary"`
	GosiDeduction           decimal.Decimal `json:"gosi_deduction"`
	AttendanceDeductions    decimal.Decimal `json:"attendance_deductions"`
	LoanDeduction           decimal.Decimal `json:"loan_deduction"`
	TotalDeductions         decimal.Decimal `json:"total_deductions"`
	NetSalary               decimal.Decimal `json:"net_salary"`
}

type PayrollRunResponse struct {
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Lines       []PayrollLineResponse `json:"lines"`
	Totals      PayrollTotalsResponse `json:"totals"`
}
