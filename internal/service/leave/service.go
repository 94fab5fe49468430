package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employees employee.EmployeeRepository
	users     user.UserRepository
}

func NewLeaveService(leaveRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepository,
		employees:              employeeRepository,
		users:                  userRepository,
	}
}

// SubmitRequest implements leave.LeaveService. New requests always enter as
// pending, whatever the caller supplies.
func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       req.Days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// ApproveRequest implements leave.LeaveService. Only pending requests can be
// approved; the decision is final.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, requestID, approverID string) (leave.LeaveRequestResponse, error) {
	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !approver.CanApprove() {
		return leave.LeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.IsProcessed() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = leave.StatusApproved
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	request.RejectionReason = nil

	updated, err := s.LeaveRequestRepository.Replace(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(updated), nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, requestID, approverID, reason string) (leave.LeaveRequestResponse, error) {
	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !approver.CanApprove() {
		return leave.LeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if request.IsProcessed() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	request.Status = leave.StatusRejected
	request.ApprovedBy = &approverID
	request.RejectionReason = &reason
	request.ApprovedAt = nil

	updated, err := s.LeaveRequestRepository.Replace(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(updated), nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	list, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// ListRequestsByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequestsByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	list, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(list), nil
}

// UpdateRequest implements leave.LeaveService. Processed requests are frozen.
func (s *LeaveServiceImpl) UpdateRequest(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if existing.IsProcessed() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	// The merged record must still satisfy days == inclusive(start, end).
	start := existing.StartDate
	if req.StartDate != nil {
		start, _ = validator.IsValidDate(*req.StartDate)
	}
	end := existing.EndDate
	if req.EndDate != nil {
		end, _ = validator.IsValidDate(*req.EndDate)
	}
	days := existing.Days
	if req.Days != nil {
		days = *req.Days
	}
	if end.Before(start) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	if days != validator.InclusiveDays(start, end) {
		return leave.LeaveRequestResponse{}, leave.ErrInconsistentDayCount
	}

	updated, err := s.LeaveRequestRepository.Update(ctx, id, req)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteRequest(ctx context.Context, id string) error {
	return s.LeaveRequestRepository.Delete(ctx, id)
}

func toResponse(r leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Type:            string(r.Type),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApprovedBy:      r.ApprovedBy,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

func toResponses(list []leave.LeaveRequest) []leave.LeaveRequestResponse {
	out := make([]leave.LeaveRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toResponse(r))
	}
	return out
}
