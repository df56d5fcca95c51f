package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResendMailer_SendsExpectedPayload(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mailer := NewResendMailer("test-key", "TAFC <sales@tafc.tn>", "sales@tafc.tn")
	mailer.endpoint = srv.URL

	m := Message{Name: "Karim", Email: "karim@example.com", Message: "Demande de tarifs."}
	if err := mailer.Send(context.Background(), m); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	if auth != "Bearer test-key" {
		t.Fatalf("wrong auth header: %q", auth)
	}
	if got["reply_to"] != "karim@example.com" {
		t.Fatalf("reply_to not set from sender email: %v", got)
	}
	subject, _ := got["subject"].(string)
	if !strings.Contains(subject, "Karim") {
		t.Fatalf("subject missing sender name: %q", subject)
	}
	text, _ := got["text"].(string)
	if !strings.Contains(text, "Société: N/A") {
		t.Fatalf("empty company must render as N/A: %q", text)
	}
}

func TestResendMailer_ProviderErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	mailer := NewResendMailer("bad-key", "from@tafc.tn", "to@tafc.tn")
	mailer.endpoint = srv.URL

	err := mailer.Send(context.Background(), Message{Name: "K", Email: "k@example.com", Message: "msg"})
	if err == nil {
		t.Fatal("expected an error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("error should carry the status: %v", err)
	}
}
