package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafenotify/internal/entities"
)

func validBookingForm() BookingForm {
	return BookingForm{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+39 333 1234567",
		Date:    "2024-12-25",
		Time:    "18:00",
		Guests:  "4",
		Message: "Window table, please",
	}
}

// longEmail builds a syntactically valid address longer than 255 characters
// without exceeding per-label limits.
func longEmail() string {
	label := strings.Repeat("b", 63)
	return "a@" + label + "." + label + "." + label + "." + strings.Repeat("c", 60) + ".com"
}

func TestBookingSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookingForm)
		wantMsg string
	}{
		{"empty name", func(f *BookingForm) { f.Name = "" }, "Name is required"},
		{"blank name", func(f *BookingForm) { f.Name = "   " }, "Name is required"},
		{"long name", func(f *BookingForm) { f.Name = strings.Repeat("a", 101) }, "Name must be less than 100 characters"},
		{"empty email", func(f *BookingForm) { f.Email = "" }, "Invalid email address"},
		{"bad email", func(f *BookingForm) { f.Email = "not-an-address" }, "Invalid email address"},
		{"long email", func(f *BookingForm) { f.Email = longEmail() }, "Email must be less than 255 characters"},
		{"long phone", func(f *BookingForm) { f.Phone = strings.Repeat("1", 21) }, "Phone number must be less than 20 characters"},
		{"empty date", func(f *BookingForm) { f.Date = "" }, "Date is required"},
		{"empty time", func(f *BookingForm) { f.Time = "" }, "Time is required"},
		{"empty guests", func(f *BookingForm) { f.Guests = "" }, "Number of guests is required"},
		{"zero guests", func(f *BookingForm) { f.Guests = "0" }, "Number of guests must be between 1 and 12"},
		{"too many guests", func(f *BookingForm) { f.Guests = "13" }, "Number of guests must be between 1 and 12"},
		{"non-numeric guests", func(f *BookingForm) { f.Guests = "a few" }, "Number of guests must be between 1 and 12"},
		{"long message", func(f *BookingForm) { f.Message = strings.Repeat("m", 1001) }, "Message must be less than 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBookingForm()
			tt.mutate(&form)

			err := ValidateBookingForm(form)
			require.Error(t, err)

			var errs Errors
			require.True(t, errors.As(err, &errs))
			require.Len(t, errs, 1, "exactly one field must fail")
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}
}

func TestBookingSchemaPasses(t *testing.T) {
	assert.NoError(t, ValidateBookingForm(validBookingForm()))
}

func TestBookingSchemaTrimsBeforeChecking(t *testing.T) {
	form := validBookingForm()
	form.Name = "  Jane Doe  "
	form.Email = " jane@example.com "
	assert.NoError(t, ValidateBookingForm(form))
}

func TestBookingSchemaOptionalFieldsMayBeEmpty(t *testing.T) {
	form := validBookingForm()
	form.Phone = ""
	form.Message = ""
	assert.NoError(t, ValidateBookingForm(form))
}

func TestBookingSchemaGuestBounds(t *testing.T) {
	for _, guests := range []string{"1", "12"} {
		form := validBookingForm()
		form.Guests = guests
		assert.NoError(t, ValidateBookingForm(form), "guests=%s", guests)
	}
}

func validContactForm() ContactForm {
	return ContactForm{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Sundays?",
	}
}

func TestContactSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContactForm)
		wantMsg string
	}{
		{"empty name", func(f *ContactForm) { f.Name = "" }, "Name is required"},
		{"long name", func(f *ContactForm) { f.Name = strings.Repeat("a", 101) }, "Name must be less than 100 characters"},
		{"bad email", func(f *ContactForm) { f.Email = "nope" }, "Invalid email address"},
		{"long subject", func(f *ContactForm) { f.Subject = strings.Repeat("s", 201) }, "Subject must be less than 200 characters"},
		{"empty message", func(f *ContactForm) { f.Message = "" }, "Message is required"},
		{"blank message", func(f *ContactForm) { f.Message = "  " }, "Message is required"},
		{"long message", func(f *ContactForm) { f.Message = strings.Repeat("m", 1001) }, "Message must be less than 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validContactForm()
			tt.mutate(&form)

			err := ValidateContactForm(form)
			require.Error(t, err)

			var errs Errors
			require.True(t, errors.As(err, &errs))
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}

	assert.NoError(t, ValidateContactForm(validContactForm()))

	noSubject := validContactForm()
	noSubject.Subject = ""
	assert.NoError(t, ValidateContactForm(noSubject))
}

func validReviewForm() ReviewForm {
	return ReviewForm{Name: "Sam", Rating: 5, Review: "Great coffee"}
}

func TestReviewSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReviewForm)
		wantMsg string
	}{
		{"empty name", func(f *ReviewForm) { f.Name = "" }, "Name is required"},
		{"long name", func(f *ReviewForm) { f.Name = strings.Repeat("a", 101) }, "Name must be less than 100 characters"},
		{"no rating", func(f *ReviewForm) { f.Rating = 0 }, "Please select a rating"},
		{"rating too high", func(f *ReviewForm) { f.Rating = 6 }, "Please select a rating"},
		{"empty review", func(f *ReviewForm) { f.Review = "" }, "Review is required"},
		{"blank review", func(f *ReviewForm) { f.Review = "   " }, "Review is required"},
		{"long review", func(f *ReviewForm) { f.Review = strings.Repeat("r", 1001) }, "Review must be less than 1000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validReviewForm()
			tt.mutate(&form)

			err := ValidateReviewForm(form)
			require.Error(t, err)

			var errs Errors
			require.True(t, errors.As(err, &errs))
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMsg, errs[0].Message)
		})
	}

	for _, rating := range []float64{1, 5} {
		form := validReviewForm()
		form.Rating = rating
		assert.NoError(t, ValidateReviewForm(form), "rating=%v", rating)
	}
}

func TestValidateBookingRequest(t *testing.T) {
	req := entities.BookingNotificationRequest{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Date:   "2024-12-25",
		Time:   "18:00",
		Guests: 4,
	}
	assert.NoError(t, ValidateBooking(req))

	req.Guests = 13
	err := ValidateBooking(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Number of guests must be between 1 and 12")

	// an omitted guests field decodes to zero and is rejected the same way
	req.Guests = 0
	err = ValidateBooking(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Number of guests must be between 1 and 12")
}

func TestValidateReviewRequest(t *testing.T) {
	req := entities.ReviewNotificationRequest{Name: "Sam", Rating: 5, Comment: "Great coffee"}
	assert.NoError(t, ValidateReview(req))

	req.Rating = 0
	err := ValidateReview(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please select a rating")
}

func TestValidateContactRequest(t *testing.T) {
	req := entities.ContactNotificationRequest{Name: "Sam", Email: "sam@example.com", Message: "Hello"}
	assert.NoError(t, ValidateContact(req))

	req.Email = "nope"
	err := ValidateContact(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email address")
}

func TestErrorsJoinsMessages(t *testing.T) {
	err := ValidateBookingForm(BookingForm{})
	require.Error(t, err)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Greater(t, len(errs), 1)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Date is required")
}
