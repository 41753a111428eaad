package employee

import "context"

// EmployeeRepository exposes the read-only master-data queries the payroll
// run depends on. Exclusion from payroll is data-driven via the
// is_payroll_excluded flag, never by matching names.
type EmployeeRepository interface {
	// GetActiveForPayroll returns active employees that are not flagged
	// payroll-excluded.
	GetActiveForPayroll(ctx context.Context) ([]Employee, error)
}
