package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender pushes outbound WhatsApp messages through Twilio's REST
// API. Webhook replies go back as TwiML in the HTTP response and never
// touch this; the sender exists for operator-initiated messages.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioSender builds a sender for the given account and WhatsApp number.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SendWhatsAppMessage sends a text message to the given WhatsApp number.
// The "whatsapp:" prefix is added when the caller omits it.
func (t *TwilioSender) SendWhatsAppMessage(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	form := url.Values{}
	form.Set("From", ensureWhatsAppPrefix(t.from))
	form.Set("To", ensureWhatsAppPrefix(to))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("Failed to send WhatsApp message", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("failed to send message: %s", resp.Status)
	}

	slog.Info("WhatsApp message sent", "to", to)
	return nil
}

func ensureWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
