package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the email provider credentials are
// missing. Handlers surface it as a generic server-misconfiguration
// message; the detail stays in the logs.
var ErrNotConfigured = errors.New("mailer not configured")

// Mailer delivers one contact message. Implementations must not block the
// catalog: the call is bounded by the request context and an internal
// timeout.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

const resendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends contact messages through the Resend transactional
// email API.
type ResendMailer struct {
	apiKey   string
	from     string
	to       string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		to:       to,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *ResendMailer) configured() bool {
	return r.apiKey != "" && r.from != "" && r.to != ""
}

func (r *ResendMailer) Send(ctx context.Context, m Message) error {
	if !r.configured() {
		return ErrNotConfigured
	}

	payload := map[string]any{
		"from":     r.from,
		"to":       []string{r.to},
		"reply_to": m.Email,
		"subject":  fmt.Sprintf("TAFC | Nouveau message - %s", m.Name),
		"text":     renderText(m),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("resend: %s: %s", res.Status, snippet)
	}
	return nil
}

func renderText(m Message) string {
	company := m.Company
	if company == "" {
		company = "N/A"
	}
	phone := m.Phone
	if phone == "" {
		phone = "N/A"
	}
	return fmt.Sprintf(`Nouveau message TAFC

Nom: %s
Société: %s
Email: %s
Téléphone: %s

Message:
%s
`, m.Name, company, m.Email, phone, m.Message)
}
