package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

// Templates are embedded so rendering never depends on the working directory.
// html/template escapes every interpolated field, so user-supplied names,
// messages and comments cannot inject markup into the emails.

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func renderEmail(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// formatBookingDate turns the form's YYYY-MM-DD date into a readable form,
// falling back to the raw string when it does not parse.
func formatBookingDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("Monday, January 2, 2006")
}
