package payroll

import (
	"context"
	"time"
)

// PayrollService computes the payroll run for a reference month on demand.
// Results are never persisted; calling it again with unchanged inputs yields
// an identical run.
type PayrollService interface {
	ComputePayroll(ctx context.Context, refMonth time.Time) (PayrollRunResponse, error)
}
