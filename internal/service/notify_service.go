package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers operational messages to the site admins.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

type SendGridNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	toEmail   string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName, toEmail string) *SendGridNotifier {
	if fromName == "" {
		fromName = "Ramen Map"
	}
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

func (n *SendGridNotifier) Notify(ctx context.Context, subject, body string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", n.toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", n.toEmail, err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		slog.Info("email sent", slog.String("to", n.toEmail), slog.String("subject", subject), slog.Int("status", response.StatusCode))
		return nil
	}
	return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
}

type TwilioNotifier struct {
	client     *twilio.RestClient
	fromNumber string
	toNumber   string
}

func NewTwilioNotifier(accountSid, authToken, fromNumber, toNumber string) *TwilioNotifier {
	if !strings.HasPrefix(toNumber, "+") {
		slog.Warn("sms destination is not in E.164 format", slog.String("to", toNumber))
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	return &TwilioNotifier{client: client, fromNumber: fromNumber, toNumber: toNumber}
}

// Notify sends the subject only; SMS bodies are kept short.
func (n *TwilioNotifier) Notify(_ context.Context, subject, _ string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(n.toNumber)
	params.SetFrom(n.fromNumber)
	params.SetBody(subject)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", n.toNumber, err)
	}
	if resp != nil && resp.Sid != nil {
		slog.Info("sms sent", slog.String("to", n.toNumber), slog.String("sid", *resp.Sid))
	}
	return nil
}

// MultiNotifier fans a message out to every notifier and joins the errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, subject, body string) error {
	if len(m) == 0 {
		slog.Warn("no notification channel configured, dropping message", slog.String("subject", subject))
		return nil
	}
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, subject, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
