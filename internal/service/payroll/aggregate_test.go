package payroll

import (
	"testing"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCountWorkingDays(t *testing.T) {
	t.Parallel()

	day := func(d int, status attendance.Status) attendance.Record {
		return attendance.Record{
			EmployeeID: "emp-1",
			WorkDate:   time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC),
			Status:     status,
		}
	}

	records := []attendance.Record{
		day(1, attendance.StatusPresent),
		day(2, attendance.StatusLate),
		day(3, attendance.StatusAbsent),
		day(4, attendance.StatusOnLeave),
		day(5, attendance.StatusJustified),
		day(6, attendance.StatusSick),
		day(7, attendance.StatusPresent),
	}

	assert.Equal(t, 3, CountWorkingDays(records))
	assert.Equal(t, 0, CountWorkingDays(nil))
}

func TestSumViolationDeductions(t *testing.T) {
	t.Parallel()

	records := []deduction.Record{
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(150)},
		{EmployeeID: "emp-1", Amount: decimal.RequireFromString("49.75")},
	}

	got := SumViolationDeductions(records)
	assert.True(t, got.Equal(decimal.RequireFromString("199.75")), "sum = %s", got)
	assert.True(t, SumViolationDeductions(nil).IsZero())
}

func TestSumLoanInstallments(t *testing.T) {
	t.Parallel()

	installments := []loan.Installment{
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(400), Status: loan.InstallmentStatusPending},
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(400), Status: loan.InstallmentStatusPaid},
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(250), Status: loan.InstallmentStatusPending},
		{EmployeeID: "emp-1", Amount: decimal.NewFromInt(90), Status: loan.InstallmentStatusWaived},
	}

	got := SumLoanInstallments(installments)
	assert.True(t, got.Equal(decimal.NewFromInt(650)), "sum = %s", got)
	assert.True(t, SumLoanInstallments(nil).IsZero())
}
