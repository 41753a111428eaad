package postgresql

import (
	"context"
	"fmt"

	"github.com/shamil-erp/hr-backend-go/internal/domain/employee"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetActiveForPayroll implements employee.EmployeeRepository.
// Monetary columns are coalesced to zero here so the computation never sees
// a null amount.
func (r *employeeRepository) GetActiveForPayroll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, nationality, hire_date,
			   COALESCE(base_salary, 0),
			   COALESCE(housing_allowance, 0),
			   COALESCE(transportation_allowance, 0),
			   COALESCE(other_allowances, 0),
			   gosi_registration_date, gosi_type,
			   is_payroll_excluded, employment_status,
			   created_at, updated_at
		FROM employees
		WHERE employment_status = $1
		  AND is_payroll_excluded = FALSE
		  AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, employee.EmploymentStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Nationality, &emp.HireDate,
			&emp.BaseSalary, &emp.HousingAllowance,
			&emp.TransportationAllowance, &emp.OtherAllowances,
			&emp.GosiRegistrationDate, &emp.GosiType,
			&emp.IsPayrollExcluded, &emp.EmploymentStatus,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll employees: %w", err)
	}

	return employees, nil
}
