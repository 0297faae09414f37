package api

// Booking
type BookingNotificationResponse struct {
	Success         bool   `json:"success"`
	CustomerEmailID string `json:"customerEmailId,omitempty"`
	OwnerEmailID    string `json:"ownerEmailId,omitempty"`
}

// Review and contact share one shape
type NotificationResponse struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
