package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByDateRange returns all attendance records, for all employees,
	// with work_date inside [start, end] inclusive.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
