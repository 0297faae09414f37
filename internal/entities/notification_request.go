package entities

import "strings"

// BookingNotificationRequest is the JSON body of a booking notification call.
// Phone and Message are optional; a JSON null decodes to the empty string and
// is treated as absent.
type BookingNotificationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Guests  int    `json:"guests"`
	Message string `json:"message"`
}

// Normalize applies the booking schema's trimming policy.
func (r *BookingNotificationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// ReviewNotificationRequest is the JSON body of a review notification call.
type ReviewNotificationRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *ReviewNotificationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Comment = strings.TrimSpace(r.Comment)
}

// ContactNotificationRequest is the JSON body of a contact form notification
// call. Subject is optional.
type ContactNotificationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *ContactNotificationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}
