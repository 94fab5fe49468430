package leave

import "context"

// LeaveRequestRepository - interface for the leave request collection
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	Update(ctx context.Context, id string, updates UpdateLeaveRequestRequest) (LeaveRequest, error)
	// Replace swaps the whole record for an already-merged copy. Used by the
	// approve/reject transitions, which stamp several fields atomically.
	Replace(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
