package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"cafenotify/internal/config"
)

// Email is one outbound message for the transactional provider.
type Email struct {
	FromName  string
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// EmailSender delivers one email and reports the provider-assigned message ID.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

// SendGridSender sends through the SendGrid v3 API. The client is built once
// at startup from config; a missing API key surfaces as a send-time error.
type SendGridSender struct {
	client *sendgrid.Client
	cfg    config.EmailConfig
	log    zerolog.Logger
}

func NewSendGridSender(cfg config.EmailConfig, log zerolog.Logger) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
		log:    log,
	}
}

func (s *SendGridSender) Send(ctx context.Context, email Email) (string, error) {
	if s.cfg.SendGridAPIKey == "" {
		return "", fmt.Errorf("SENDGRID_API_KEY is not configured")
	}

	fromName := email.FromName
	if fromName == "" {
		fromName = s.cfg.FromName
	}
	from := mail.NewEmail(fromName, s.cfg.FromEmail)
	to := mail.NewEmail(email.ToName, email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.PlainText, email.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid send to %s failed: %w", email.To, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	id := messageID(response.Headers)
	s.log.Info().Str("to", email.To).Str("subject", email.Subject).Str("message_id", id).Msg("email sent")
	return id, nil
}

// messageID extracts the provider-assigned ID from the response headers.
func messageID(headers map[string][]string) string {
	for name, values := range headers {
		if strings.EqualFold(name, "X-Message-Id") && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// SMSSender delivers one text message.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioSender sends through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    zerolog.Logger
}

func NewTwilioSender(cfg config.SMSConfig, log zerolog.Logger) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})
	return &TwilioSender{client: client, from: cfg.FromNumber, log: log}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if !strings.HasPrefix(to, "+") {
		s.log.Warn().Str("to", to).Msg("destination number is not in E.164 format, the SMS may fail")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	if resp.Sid != nil {
		s.log.Info().Str("to", to).Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
