package notification

import "time"

type NotificationResponse struct {
	ID             string    `json:"id"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"is_read"`
	LeaveRequestID *string   `json:"leave_request_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		Message:        n.Message,
		IsRead:         n.IsRead,
		LeaveRequestID: n.LeaveRequestID,
		CreatedAt:      n.CreatedAt,
	}
}
