package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"cafenotify/internal/entities"
	"cafenotify/internal/service"
	"cafenotify/internal/validation"
)

type NotificationHandler struct {
	Service *service.NotifyService
	Log     zerolog.Logger
}

func NewNotificationHandler(svc *service.NotifyService, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{Service: svc, Log: log}
}

// SendBookingNotification handles a booking notification request: decode,
// validate against the booking schema, send the customer confirmation and the
// owner alert, answer with both provider message IDs.
func (h *NotificationHandler) SendBookingNotification(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req entities.BookingNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	req.Normalize()
	if err := validation.ValidateBooking(req); err != nil {
		writeError(w, err)
		return
	}

	h.Log.Info().Str("email", req.Email).Msg("sending booking notification")

	result, err := h.Service.SendBookingNotifications(r.Context(), req)
	if err != nil {
		h.Log.Error().Err(err).Msg("booking notification failed")
		writeError(w, err)
		return
	}

	h.Log.Info().
		Str("customer_email_id", result.CustomerEmailID).
		Str("owner_email_id", result.OwnerEmailID).
		Msg("booking emails sent")

	writeJSON(w, http.StatusOK, BookingNotificationResponse{
		Success:         true,
		CustomerEmailID: result.CustomerEmailID,
		OwnerEmailID:    result.OwnerEmailID,
	})
}

// SendReviewNotification handles a review notification request and sends the
// owner alert with the star rating.
func (h *NotificationHandler) SendReviewNotification(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req entities.ReviewNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	req.Normalize()
	if err := validation.ValidateReview(req); err != nil {
		writeError(w, err)
		return
	}

	h.Log.Info().Str("name", req.Name).Int("rating", req.Rating).Msg("sending review notification")

	id, err := h.Service.SendReviewNotification(r.Context(), req)
	if err != nil {
		h.Log.Error().Err(err).Msg("review notification failed")
		writeError(w, err)
		return
	}

	h.Log.Info().Str("email_id", id).Msg("review email sent")
	writeJSON(w, http.StatusOK, NotificationResponse{Success: true, EmailID: id})
}

// SendContactNotification handles a contact form notification request.
func (h *NotificationHandler) SendContactNotification(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req entities.ContactNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	req.Normalize()
	if err := validation.ValidateContact(req); err != nil {
		writeError(w, err)
		return
	}

	h.Log.Info().Str("email", req.Email).Msg("sending contact notification")

	id, err := h.Service.SendContactNotification(r.Context(), req)
	if err != nil {
		h.Log.Error().Err(err).Msg("contact notification failed")
		writeError(w, err)
		return
	}

	h.Log.Info().Str("email_id", id).Msg("contact email sent")
	writeJSON(w, http.StatusOK, NotificationResponse{Success: true, EmailID: id})
}

// preflight answers an OPTIONS request with an empty 200 and the cross-origin
// headers. Handlers keep this check even though the CORS middleware answers
// preflights first, so they behave the same when invoked directly.
func preflight(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	setCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
	return true
}
