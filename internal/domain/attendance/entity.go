package attendance

import "time"

// Record is an immutable daily attendance fact for one employee.
type Record struct {
	ID          string
	EmployeeID  string
	WorkDate    time.Time
	Status      Status
	LateMinutes int
	CreatedAt   time.Time
}

type Status string

const (
	StatusPresent   Status = "present"
	StatusLate      Status = "late"
	StatusAbsent    Status = "absent"
	StatusOnLeave   Status = "on_leave"
	StatusJustified Status = "justified"
	StatusSick      Status = "sick"
)

// CountsAsWorkingDay reports whether the record counts toward the
// working-day total of a payroll period.
func (s Status) CountsAsWorkingDay() bool {
	return s == StatusPresent || s == StatusLate
}
