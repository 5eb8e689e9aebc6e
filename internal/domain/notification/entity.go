package notification

import "time"

type Notification struct {
	ID             string
	UserID         string
	Message        string
	IsRead         bool
	LeaveRequestID *string
	CreatedAt      time.Time
}
