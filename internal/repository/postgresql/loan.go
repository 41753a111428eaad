package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/loan"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

// GetPendingByDueRange implements loan.LoanRepository.
func (r *loanRepository) GetPendingByDueRange(ctx context.Context, start, end time.Time) ([]loan.Installment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, loan_id, employee_id, due_date,
			   COALESCE(installment_amount, 0), status, created_at
		FROM loan_installments
		WHERE status = $1
		  AND due_date BETWEEN $2 AND $3
		ORDER BY employee_id, due_date
	`

	rows, err := q.Query(ctx, query, loan.InstallmentStatusPending, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan installments: %w", err)
	}
	defer rows.Close()

	var installments []loan.Installment
	for rows.Next() {
		var inst loan.Installment
		err := rows.Scan(
			&inst.ID, &inst.LoanID, &inst.EmployeeID, &inst.DueDate,
			&inst.Amount, &inst.Status, &inst.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan installment: %w", err)
		}
		installments = append(installments, inst)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read loan installments: %w", err)
	}

	return installments, nil
}
