package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one scheduled repayment of an employee loan.
type Installment struct {
	ID         string
	LoanID     string
	EmployeeID string
	DueDate    time.Time
	Amount     decimal.Decimal
	Status     InstallmentStatus
	CreatedAt  time.Time
}

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
	InstallmentStatusWaived  InstallmentStatus = "waived"
)
