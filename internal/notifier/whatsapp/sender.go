// Package whatsapp delivers replies through a Twilio-style WhatsApp
// messaging API.
package whatsapp

import (
	"context"
	"fmt"
	"net/url"

	"frontdesk/pkg/client"
	"frontdesk/pkg/logger"
)

// StatusError is a non-2xx response from the messaging API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("whatsapp api returned status %d: %s", e.Code, e.Body)
}

type Sender struct {
	client     *client.HttpClient
	accountSID string
	fromNumber string
	log        *logger.Logger
}

func NewSender(apiURL string, accountSID string, authToken string, fromNumber string, log *logger.Logger) *Sender {
	return &Sender{
		client:     client.NewHttpClient(apiURL).WithBasicAuth(accountSID, authToken),
		accountSID: accountSID,
		fromNumber: fromNumber,
		log:        log,
	}
}

// Send posts one message. The provider expects whatsapp:-prefixed numbers
// in the form payload.
func (s *Sender) Send(ctx context.Context, to string, body string) error {
	form := url.Values{}
	form.Set("From", "whatsapp:"+s.fromNumber)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", body)

	path := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", s.accountSID)
	resp, err := s.client.POSTForm(ctx, path, form)
	if err != nil {
		return fmt.Errorf("whatsapp api request failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(resp.Body)}
	}

	s.log.Info("WhatsApp message sent", "to", to, "status", resp.StatusCode)
	return nil
}
