package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/attendance"
	"github.com/shamil-erp/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, status,
			   COALESCE(late_minutes, 0), created_at
		FROM attendances
		WHERE work_date BETWEEN $1 AND $2
		ORDER BY employee_id, work_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.WorkDate, &rec.Status,
			&rec.LateMinutes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
