package payroll

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== fakes =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) GetActiveForPayroll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, f.err
}

type fakeAttendanceRepo struct {
	records []attendance.Record
	err     error
}

func (f *fakeAttendanceRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	return f.records, f.err
}

type fakeDeductionRepo struct {
	records []deduction.Record
	err     error
}

func (f *fakeDeductionRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]deduction.Record, error) {
	return f.records, f.err
}

type fakeLoanRepo struct {
	installments []loan.Installment
	err          error
}

func (f *fakeLoanRepo) GetPendingByDueRange(ctx context.Context, start, end time.Time) ([]loan.Installment, error) {
	return f.installments, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEmployee(nationality string) employee.Employee {
	emp := scenarioEmployee()
	emp.ID = uuid.NewString()
	emp.Nationality = nationality
	return emp
}

func newTestService(
	empRepo *fakeEmployeeRepo,
	attRepo *fakeAttendanceRepo,
	dedRepo *fakeDeductionRepo,
	loanRepo *fakeLoanRepo,
) *PayrollServiceImpl {
	svc := NewPayrollService(empRepo, attRepo, dedRepo, loanRepo, testLogger())
	return svc.(*PayrollServiceImpl)
}

// ===== tests =====

func TestComputePayroll_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	emp := testEmployee("Saudi")
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{emp}},
		&fakeAttendanceRepo{records: []attendance.Record{
			{EmployeeID: emp.ID, WorkDate: time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		}},
		&fakeDeductionRepo{},
		&fakeLoanRepo{},
	)

	result, err := svc.ComputePayroll(ctx, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", result.PeriodStart)
	assert.Equal(t, "2025-04-30", result.PeriodEnd)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, emp.ID, result.Lines[0].EmployeeID)
	assert.Equal(t, 1, result.Lines[0].WorkingDays)
	assert.True(t, result.Lines[0].NetSalary.Equal(decimal.RequireFromString("5915.00")))
	assert.Equal(t, 1, result.Totals.EmployeeCount)
}

func TestComputePayroll_EmployeeFetchFailureIsFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srcErr := errors.New("connection refused")
	svc := newTestService(
		&fakeEmployeeRepo{err: srcErr},
		&fakeAttendanceRepo{},
		&fakeDeductionRepo{},
		&fakeLoanRepo{},
	)

	result, err := svc.ComputePayroll(ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, srcErr)
	assert.Empty(t, result.Lines)
}

func TestComputePayroll_AttendanceFetchFailureIsFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srcErr := errors.New("timeout")
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{testEmployee("Saudi")}},
		&fakeAttendanceRepo{err: srcErr},
		&fakeDeductionRepo{},
		&fakeLoanRepo{},
	)

	_, err := svc.ComputePayroll(ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, srcErr)
}

func TestComputePayroll_DeductionFetchFailureIsFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srcErr := errors.New("relation does not exist")
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{testEmployee("Saudi")}},
		&fakeAttendanceRepo{},
		&fakeDeductionRepo{err: srcErr},
		&fakeLoanRepo{},
	)

	_, err := svc.ComputePayroll(ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	require.Error(t, err)
	assert.ErrorIs(t, err, srcErr)
}

func TestComputePayroll_LoanFetchFailureDegradesToZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	emp := testEmployee("Saudi")
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{emp}},
		&fakeAttendanceRepo{},
		&fakeDeductionRepo{},
		&fakeLoanRepo{err: errors.New("loan service down")},
	)

	result, err := svc.ComputePayroll(ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.True(t, result.Lines[0].LoanDeduction.IsZero())
	// Everything else is still computed
	assert.True(t, result.Lines[0].GosiDeduction.Equal(decimal.RequireFromString("585.00")))
}

func TestComputePayroll_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	emp := testEmployee("Saudi")
	svc := newTestService(
		&fakeEmployeeRepo{employees: []employee.Employee{emp}},
		&fakeAttendanceRepo{records: []attendance.Record{
			{EmployeeID: emp.ID, WorkDate: time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
		}},
		&fakeDeductionRepo{records: []deduction.Record{
			{EmployeeID: emp.ID, DeductionDate: time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(50)},
		}},
		&fakeLoanRepo{installments: []loan.Installment{
			{EmployeeID: emp.ID, DueDate: time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(300), Status: loan.InstallmentStatusPending},
		}},
	)

	refMonth := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	first, err := svc.ComputePayroll(ctx, refMonth)
	require.NoError(t, err)
	second, err := svc.ComputePayroll(ctx, refMonth)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
