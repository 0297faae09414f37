package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"cafenotify/internal/config"
	"cafenotify/internal/entities"
)

// NotifyService renders the notification emails and drives the senders.
// The owner recipient comes from config, never from the request.
type NotifyService struct {
	email      EmailSender
	sms        SMSSender
	ownerPhone string
	cfg        config.EmailConfig
	log        zerolog.Logger
}

// NewNotifyService builds the service. sms may be nil; the owner SMS alert is
// skipped when it is.
func NewNotifyService(email EmailSender, sms SMSSender, ownerPhone string, cfg config.EmailConfig, log zerolog.Logger) *NotifyService {
	return &NotifyService{
		email:      email,
		sms:        sms,
		ownerPhone: ownerPhone,
		cfg:        cfg,
		log:        log,
	}
}

// BookingNotificationResult carries the provider message IDs of the two
// booking emails.
type BookingNotificationResult struct {
	CustomerEmailID string
	OwnerEmailID    string
}

// SendBookingNotifications sends the customer confirmation and the owner
// alert for one booking, in that order. Either send failing fails the whole
// operation; there is no partial-success path. The owner SMS alert is
// best-effort and never fails the request.
func (s *NotifyService) SendBookingNotifications(ctx context.Context, req entities.BookingNotificationRequest) (*BookingNotificationResult, error) {
	data := entities.BookingEmailData{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		DateFormatted: formatBookingDate(req.Date),
		Time:          req.Time,
		Guests:        req.Guests,
		Message:       req.Message,
	}

	customerHTML, err := renderEmail("booking_customer.html", data)
	if err != nil {
		return nil, err
	}
	ownerHTML, err := renderEmail("booking_owner.html", data)
	if err != nil {
		return nil, err
	}

	customerID, err := s.email.Send(ctx, Email{
		FromName:  s.cfg.FromName,
		To:        req.Email,
		ToName:    req.Name,
		Subject:   "Booking Confirmation - Sweet Cafe",
		PlainText: bookingCustomerText(data),
		HTML:      customerHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("customer confirmation: %w", err)
	}

	ownerID, err := s.email.Send(ctx, Email{
		FromName:  s.cfg.FromName + " Bookings",
		To:        s.cfg.OwnerEmail,
		Subject:   "New Booking Received",
		PlainText: bookingOwnerText(data),
		HTML:      ownerHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("owner alert: %w", err)
	}

	if s.sms != nil && s.ownerPhone != "" {
		smsBody := fmt.Sprintf("Sweet Cafe: new booking from %s for %d guests on %s at %s. Details in your email.",
			data.Name, data.Guests, data.DateFormatted, data.Time)
		if err := s.sms.Send(ctx, s.ownerPhone, smsBody); err != nil {
			s.log.Warn().Err(err).Msg("owner sms alert failed")
		}
	}

	return &BookingNotificationResult{CustomerEmailID: customerID, OwnerEmailID: ownerID}, nil
}

// SendReviewNotification sends the owner alert for one review and returns the
// provider message ID.
func (s *NotifyService) SendReviewNotification(ctx context.Context, req entities.ReviewNotificationRequest) (string, error) {
	data := entities.ReviewEmailData{
		Name:    req.Name,
		Rating:  req.Rating,
		Stars:   strings.Repeat("⭐", req.Rating),
		Comment: req.Comment,
	}

	html, err := renderEmail("review_owner.html", data)
	if err != nil {
		return "", err
	}

	id, err := s.email.Send(ctx, Email{
		FromName:  s.cfg.FromName + " Reviews",
		To:        s.cfg.OwnerEmail,
		Subject:   fmt.Sprintf("New %d-Star Review Received", req.Rating),
		PlainText: reviewOwnerText(data),
		HTML:      html,
	})
	if err != nil {
		return "", fmt.Errorf("owner alert: %w", err)
	}
	return id, nil
}

// SendContactNotification sends the owner alert for one contact form message
// and returns the provider message ID.
func (s *NotifyService) SendContactNotification(ctx context.Context, req entities.ContactNotificationRequest) (string, error) {
	data := entities.ContactEmailData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	html, err := renderEmail("contact_owner.html", data)
	if err != nil {
		return "", err
	}

	id, err := s.email.Send(ctx, Email{
		FromName:  s.cfg.FromName + " Contact",
		To:        s.cfg.OwnerEmail,
		Subject:   "New Contact Message Received",
		PlainText: contactOwnerText(data),
		HTML:      html,
	})
	if err != nil {
		return "", fmt.Errorf("owner alert: %w", err)
	}
	return id, nil
}

func bookingCustomerText(d entities.BookingEmailData) string {
	b := fmt.Sprintf(
		"Dear %s,\n\nWe're delighted to confirm your reservation at Sweet Cafe.\n\n"+
			"Booking Details:\nDate: %s\nTime: %s\nNumber of Guests: %d\n",
		d.Name, d.DateFormatted, d.Time, d.Guests)
	if d.Phone != "" {
		b += fmt.Sprintf("Phone: %s\n", d.Phone)
	}
	if d.Message != "" {
		b += fmt.Sprintf("Special Requests: %s\n", d.Message)
	}
	b += "\nWe look forward to serving you!\n\nWarm regards,\nSweet Cafe Team"
	return b
}

func bookingOwnerText(d entities.BookingEmailData) string {
	b := fmt.Sprintf(
		"A new booking has been received.\n\nCustomer: %s (%s)\n", d.Name, d.Email)
	if d.Phone != "" {
		b += fmt.Sprintf("Phone: %s\n", d.Phone)
	}
	b += fmt.Sprintf("Date: %s\nTime: %s\nGuests: %d\n", d.DateFormatted, d.Time, d.Guests)
	if d.Message != "" {
		b += fmt.Sprintf("Message: %s\n", d.Message)
	}
	return b
}

func reviewOwnerText(d entities.ReviewEmailData) string {
	return fmt.Sprintf("A new review has been submitted.\n\n%d/5 from %s:\n\n\"%s\"", d.Rating, d.Name, d.Comment)
}

func contactOwnerText(d entities.ContactEmailData) string {
	b := fmt.Sprintf("A new contact message has been submitted.\n\nFrom: %s (%s)\n", d.Name, d.Email)
	if d.Subject != "" {
		b += fmt.Sprintf("Subject: %s\n", d.Subject)
	}
	b += fmt.Sprintf("\n%s", d.Message)
	return b
}
