package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
)

type LeaveRequestStore struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
}

func NewLeaveRequestStore() *LeaveRequestStore {
	return &LeaveRequestStore{}
}

func (s *LeaveRequestStore) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	s.requests = append(s.requests, request)
	return request, nil
}

func (s *LeaveRequestStore) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *LeaveRequestStore) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, r := range s.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *LeaveRequestStore) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]leave.LeaveRequest, len(s.requests))
	copy(out, s.requests)
	return out, nil
}

func (s *LeaveRequestStore) Update(ctx context.Context, id string, updates leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID != id {
			continue
		}

		if updates.StartDate != nil {
			if start, ok := validator.IsValidDate(*updates.StartDate); ok {
				r.StartDate = start
			}
		}
		if updates.EndDate != nil {
			if end, ok := validator.IsValidDate(*updates.EndDate); ok {
				r.EndDate = end
			}
		}
		if updates.Days != nil {
			r.Days = *updates.Days
		}
		if updates.Reason != nil {
			r.Reason = *updates.Reason
		}
		r.UpdatedAt = time.Now().UTC()

		s.requests[i] = r
		return r, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *LeaveRequestStore) Replace(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID == request.ID {
			request.UpdatedAt = time.Now().UTC()
			s.requests[i] = request
			return request, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *LeaveRequestStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.requests {
		if r.ID == id {
			s.requests = append(s.requests[:i:i], s.requests[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}
