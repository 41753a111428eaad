package loan

import (
	"context"
	"time"
)

// LoanRepository is an optional payroll data source: when it errors the run
// degrades to zero loan deductions instead of aborting.
type LoanRepository interface {
	// GetPendingByDueRange returns pending installments with due_date inside
	// [start, end] inclusive.
	GetPendingByDueRange(ctx context.Context, start, end time.Time) ([]Installment, error)
}
