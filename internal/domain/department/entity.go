package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string // employee id of the department manager
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
