package leave

import "time"

type RequestType string

const (
	TypeLeave RequestType = "leave"
	TypeLate  RequestType = "late"
	TypeEarly RequestType = "early"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest covers full-day leave spans plus late-arrival and
// early-departure requests for a single day.
type LeaveRequest struct {
	ID          string
	UserID      string
	RequestType RequestType
	StartDate   *time.Time
	EndDate     *time.Time
	RequestDate *time.Time
	Reason      string
	Status      Status
	CreatedAt   time.Time

	// Joined fields
	Username *string
}

// RelevantDate is the date the request is about: the single day for
// late/early requests, the span start otherwise.
func (l LeaveRequest) RelevantDate() *time.Time {
	if l.RequestType == TypeLate || l.RequestType == TypeEarly {
		return l.RequestDate
	}
	return l.StartDate
}
