package deduction

import (
	"context"
	"time"
)

type DeductionRepository interface {
	// GetByDateRange returns all violation deductions with deduction_date
	// inside [start, end] inclusive.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
