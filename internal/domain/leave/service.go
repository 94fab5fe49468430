package leave

import "context"

type LeaveService interface {
	SubmitRequest(ctx context.Context, req SubmitLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveRequest(ctx context.Context, requestID, approverID string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, requestID, approverID, reason string) (LeaveRequestResponse, error)
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	ListRequestsByEmployee(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	UpdateRequest(ctx context.Context, id string, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)
	DeleteRequest(ctx context.Context, id string) error
}
