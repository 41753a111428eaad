package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/deduction"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

// GetByDateRange implements deduction.DeductionRepository.
func (r *deductionRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]deduction.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, deduction_date,
			   COALESCE(amount, 0), violation_type, created_at
		FROM attendance_deductions
		WHERE deduction_date BETWEEN $1 AND $2
		ORDER BY employee_id, deduction_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance deductions: %w", err)
	}
	defer rows.Close()

	var records []deduction.Record
	for rows.Next() {
		var rec deduction.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.DeductionDate,
			&rec.Amount, &rec.ViolationType, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance deduction: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance deductions: %w", err)
	}

	return records, nil
}
