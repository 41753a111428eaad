package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the master record consumed by the payroll run. Monetary fields
// are non-nullable and default to zero at the data-access boundary.
type Employee struct {
	ID                      string
	FullName                string
	Nationality             string
	HireDate                *time.Time
	BaseSalary              decimal.Decimal
	HousingAllowance        decimal.Decimal
	TransportationAllowance decimal.Decimal
	OtherAllowances         decimal.Decimal
	GosiRegistrationDate    *time.Time
	GosiType                *string
	IsPayrollExcluded       bool
	EmploymentStatus        EmploymentStatus
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// GosiTypeSaudi marks employees registered under the Saudi GOSI scheme even
// when the nationality field says otherwise.
const GosiTypeSaudi = "saudi"
