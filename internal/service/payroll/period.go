package payroll

import (
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
)

// ResolvePeriod returns the first and last calendar day of the month the
// reference date falls in, both inclusive.
func ResolvePeriod(ref time.Time) payroll.Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return payroll.Period{Start: start, End: end}
}
