package leave

import "time"

type Type string

const (
	TypeVacation Type = "vacation"
	TypeSick     Type = "sick"
	TypePersonal Type = "personal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type

	StartDate time.Time
	EndDate   time.Time
	Days      int
	Reason    string

	Status          Status
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsProcessed reports whether the request has reached a terminal status.
// Approved and rejected requests are never transitioned again.
func (r *LeaveRequest) IsProcessed() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
