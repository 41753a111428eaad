package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one attendance-violation deduction event.
type Record struct {
	ID            string
	EmployeeID    string
	DeductionDate time.Time
	Amount        decimal.Decimal
	ViolationType string
	CreatedAt     time.Time
}
