package entities

// BookingEmailData feeds the booking confirmation and alert templates.
// DateFormatted carries the human-readable form of the raw date string.
type BookingEmailData struct {
	Name          string
	Email         string
	Phone         string
	DateFormatted string
	Time          string
	Guests        int
	Message       string
}

// ReviewEmailData feeds the review alert template. Stars is the rating
// rendered as repeated star glyphs.
type ReviewEmailData struct {
	Name    string
	Rating  int
	Stars   string
	Comment string
}

// ContactEmailData feeds the contact alert template.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}
