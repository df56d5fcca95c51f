package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubMailer struct {
	sent []Message
	err  error
}

func (s *stubMailer) Send(ctx context.Context, m Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m)
	return nil
}

func contactApp(mailer Mailer) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(mailer)).RegisterPublicRoutes(app)
	return app
}

func postContact(t *testing.T, app *fiber.App, body string) (map[string]any, int) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got map[string]any
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return got, res.StatusCode
}

func TestSubmit_Valid(t *testing.T) {
	mailer := &stubMailer{}
	app := contactApp(mailer)

	body := `{"name":"Karim","company":"Hotel Azur","email":"karim@example.com","message":"Demande de tarifs pour crevettes IQF."}`
	got, status := postContact(t, app, body)

	if status != 200 {
		t.Fatalf("expected 200, got %d (%v)", status, got)
	}
	if got["success"] != true {
		t.Fatalf("expected success: %v", got)
	}
	if ref, _ := got["reference"].(string); ref == "" {
		t.Fatalf("expected a reference id: %v", got)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].Email != "karim@example.com" {
		t.Fatalf("message not dispatched: %+v", mailer.sent)
	}
}

func TestSubmit_ValidationErrorsReportedTogether(t *testing.T) {
	app := contactApp(&stubMailer{})

	body := `{"name":"K","email":"not-an-email","message":"short"}`
	got, status := postContact(t, app, body)

	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	details, ok := got["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected field details: %v", got)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, present := details[field]; !present {
			t.Fatalf("missing error for %s: %v", field, details)
		}
	}
}

func TestSubmit_MalformedBody(t *testing.T) {
	app := contactApp(&stubMailer{})
	got, status := postContact(t, app, `{not json`)
	if status != fiber.StatusBadRequest || got["success"] != false {
		t.Fatalf("expected 400: %d %v", status, got)
	}
}

func TestSubmit_NotConfiguredIsGeneric500(t *testing.T) {
	app := contactApp(&stubMailer{err: ErrNotConfigured})

	body := `{"name":"Karim","email":"karim@example.com","message":"Demande de tarifs export."}`
	got, status := postContact(t, app, body)

	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if got["error"] != "server misconfigured" {
		t.Fatalf("expected generic message: %v", got)
	}
}

func TestSubmit_ProviderFailureIsGeneric502(t *testing.T) {
	app := contactApp(&stubMailer{err: errors.New("resend: 503 Service Unavailable")})

	body := `{"name":"Karim","email":"karim@example.com","message":"Demande de tarifs export."}`
	got, status := postContact(t, app, body)

	if status != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", status)
	}
	// the provider error must not leak to the caller
	if msg, _ := got["error"].(string); strings.Contains(msg, "resend") {
		t.Fatalf("provider error leaked: %v", got)
	}
	if ref, _ := got["reference"].(string); ref == "" {
		t.Fatalf("failure response must carry the reference: %v", got)
	}
}

func TestValidateMessage_OptionalFields(t *testing.T) {
	m := &Message{Name: "Karim", Email: "karim@example.com", Message: "Un message suffisamment long."}
	if errs := validateMessage(m); len(errs) != 0 {
		t.Fatalf("company and phone are optional: %v", errs)
	}
}

func TestResendMailer_NotConfigured(t *testing.T) {
	mailer := NewResendMailer("", "", "")
	err := mailer.Send(context.Background(), Message{Email: "a@b.c"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
