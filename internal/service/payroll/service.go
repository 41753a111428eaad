package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	deductionRepo  deduction.DeductionRepository
	loanRepo       loan.LoanRepository
	calculator     *Calculator
	logger         *slog.Logger
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	deductionRepo deduction.DeductionRepository,
	loanRepo loan.LoanRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		loanRepo:       loanRepo,
		calculator:     NewCalculator(),
		logger:         logger,
	}
}

// ComputePayroll resolves the period once, fetches the four datasets
// concurrently and hands them to the calculator. Employee master, attendance
// records and the violation-deduction ledger are mandatory: if any of them
// fails the run aborts with no result set. The loan-installment source is
// optional: on failure the run continues with zero loan deductions.
func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, refMonth time.Time) (payroll.PayrollRunResponse, error) {
	period := ResolvePeriod(refMonth)

	var (
		employees    []employee.Employee
		attRecords   []attendance.Record
		dedRecords   []deduction.Record
		installments []loan.Installment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetActiveForPayroll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		attRecords, err = s.attendanceRepo.GetByDateRange(gctx, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to get attendance records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dedRecords, err = s.deductionRepo.GetByDateRange(gctx, period.Start, period.End)
		if err != nil {
			return fmt.Errorf("failed to get attendance deductions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ins, err := s.loanRepo.GetPendingByDueRange(gctx, period.Start, period.End)
		if err != nil {
			// Soft-fail source: the run completes with zero loan deductions.
			s.logger.Warn("loan installments unavailable, continuing without loan deductions",
				slog.String("period_start", period.Start.Format("2006-01-02")),
				slog.Any("error", err),
			)
			return nil
		}
		installments = ins
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run := s.calculator.Compute(ComputeInput{
		ReferenceMonth: refMonth,
		Employees:      employees,
		Attendance:     attRecords,
		Deductions:     dedRecords,
		Installments:   installments,
	})

	return mapToRunResponse(run), nil
}

func mapToRunResponse(run payroll.PayrollRun) payroll.PayrollRunResponse {
	lines := make([]payroll.PayrollLineResponse, 0, len(run.Lines))
	for _, line := range run.Lines {
		lines = append(lines, payroll.PayrollLineResponse{
			EmployeeID:              line.EmployeeID,
			EmployeeName:            line.EmployeeName,
			WorkRatio:               line.WorkRatio,
			IsPartialMonth:          line.IsPartialMonth,
			DaysEntitled:            line.DaysEntitled,
			WorkingDays:             line.WorkingDays,
			BaseSalary:              line.BaseSalary,
			HousingAllowance:        line.HousingAllowance,
			TransportationAllowance: line.TransportationAllowance,
			OtherAllowances:         line.OtherAllowances,
			FullGrossSalary:         line.FullGrossSalary,
			GrossSalary:             line.GrossSalary,
			IsSaudi:                 line.IsSaudi,
			GosiDeduction:           line.GosiDeduction,
			AttendanceDeductions:    line.AttendanceDeductions,
			LoanDeduction:           line.LoanDeduction,
			TotalDeductions:         line.TotalDeductions,
			NetSalary:               line.NetSalary,
		})
	}

	return payroll.PayrollRunResponse{
		PeriodStart: run.Period.Start.Format("2006-01-02"),
		PeriodEnd:   run.Period.End.Format("2006-01-02"),
		Lines:       lines,
		Totals: payroll.PayrollTotalsResponse{
			EmployeeCount:           run.Totals.EmployeeCount,
			BaseSalary:              run.Totals.BaseSalary,
			HousingAllowance:        run.Totals.HousingAllowance,
			TransportationAllowance: run.Totals.TransportationAllowance,
			GrossSalary:             run.Totals.GrossSalary,
			GosiDeduction:           run.Totals.GosiDeduction,
			AttendanceDeductions:    run.Totals.AttendanceDeductions,
			LoanDeduction:           run.Totals.LoanDeduction,
			TotalDeductions:         run.Totals.TotalDeductions,
			NetSalary:               run.Totals.NetSalary,
		},
	}
}
