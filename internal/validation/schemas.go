package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"cafenotify/internal/entities"
)

// The three form schemas mirror the rules the public site applies before
// submitting, so a caller hitting the API directly gets the same answers as
// the browser. Each schema is a typed form plus a message table mapping the
// violated rule to its user-facing text.

// FieldError reports one violated constraint of one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Errors aggregates the field errors of one form submission.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// guests arrives as a string from the form and must parse to an
	// integer between 1 and 12
	if err := v.RegisterValidation("guestcount", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= 1 && n <= 12
	}); err != nil {
		panic(err)
	}
	return v
}

// BookingForm is the booking form input as submitted.
type BookingForm struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email,max=255"`
	Phone   string `validate:"omitempty,max=20"`
	Date    string `validate:"required"`
	Time    string `validate:"required"`
	Guests  string `validate:"required,guestcount"`
	Message string `validate:"omitempty,max=1000"`
}

var bookingMessages = map[string]string{
	"Name.required":     "Name is required",
	"Name.max":          "Name must be less than 100 characters",
	"Email.required":    "Invalid email address",
	"Email.email":       "Invalid email address",
	"Email.max":         "Email must be less than 255 characters",
	"Phone.max":         "Phone number must be less than 20 characters",
	"Date.required":     "Date is required",
	"Time.required":     "Time is required",
	"Guests.required":   "Number of guests is required",
	"Guests.guestcount": "Number of guests must be between 1 and 12",
	"Message.max":       "Message must be less than 1000 characters",
}

// ContactForm is the contact form input as submitted.
type ContactForm struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email,max=255"`
	Subject string `validate:"omitempty,max=200"`
	Message string `validate:"required,max=1000"`
}

var contactMessages = map[string]string{
	"Name.required":    "Name is required",
	"Name.max":         "Name must be less than 100 characters",
	"Email.required":   "Invalid email address",
	"Email.email":      "Invalid email address",
	"Email.max":        "Email must be less than 255 characters",
	"Subject.max":      "Subject must be less than 200 characters",
	"Message.required": "Message is required",
	"Message.max":      "Message must be less than 1000 characters",
}

// ReviewForm is the review form input as submitted.
type ReviewForm struct {
	Name   string  `validate:"required,max=100"`
	Rating float64 `validate:"min=1,max=5"`
	Review string  `validate:"required,max=1000"`
}

var reviewMessages = map[string]string{
	"Name.required":   "Name is required",
	"Name.max":        "Name must be less than 100 characters",
	"Rating.min":      "Please select a rating",
	"Rating.max":      "Please select a rating",
	"Review.required": "Review is required",
	"Review.max":      "Review must be less than 1000 characters",
}

// ValidateBookingForm checks a booking form submission. It returns nil when
// every field passes, or an Errors value listing one message per failed field.
func ValidateBookingForm(f BookingForm) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	return check(f, bookingMessages)
}

// ValidateContactForm checks a contact form submission.
func ValidateContactForm(f ContactForm) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	return check(f, contactMessages)
}

// ValidateReviewForm checks a review form submission.
func ValidateReviewForm(f ReviewForm) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Review = strings.TrimSpace(f.Review)
	return check(f, reviewMessages)
}

// ValidateBooking runs the booking schema against an already-decoded
// notification request, so the handler rejects the same inputs the form does.
func ValidateBooking(req entities.BookingNotificationRequest) error {
	return ValidateBookingForm(BookingForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Guests:  strconv.Itoa(req.Guests),
		Message: req.Message,
	})
}

// ValidateContact runs the contact schema against a decoded request.
func ValidateContact(req entities.ContactNotificationRequest) error {
	return ValidateContactForm(ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
}

// ValidateReview runs the review schema against a decoded request.
func ValidateReview(req entities.ReviewNotificationRequest) error {
	return ValidateReviewForm(ReviewForm{
		Name:   req.Name,
		Rating: float64(req.Rating),
		Review: req.Comment,
	})
}

func check(form any, messages map[string]string) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errs Errors
	for _, fe := range valErrs {
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = fe.StructField() + " is invalid"
		}
		errs = append(errs, FieldError{Field: fe.StructField(), Message: msg})
	}
	return errs
}
