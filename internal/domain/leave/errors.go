package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidLeaveType             = errors.New("leave type must be vacation, sick or personal")
	ErrInvalidDateRange             = errors.New("start date must not be after end date")
	ErrInconsistentDayCount         = errors.New("days must equal the inclusive start-to-end day count")
)
