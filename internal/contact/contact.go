package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Message is the contact-form payload submitted by a prospective buyer.
type Message struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// validateMessage checks the payload and returns all field errors together.
func validateMessage(m *Message) map[string]string {
	errs := map[string]string{}
	if utf8.RuneCountInString(strings.TrimSpace(m.Name)) < 2 {
		errs["name"] = "name must be at least 2 characters"
	}
	if m.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(m.Email); err != nil {
		errs["email"] = "invalid email address"
	}
	if utf8.RuneCountInString(strings.TrimSpace(m.Message)) < 10 {
		errs["message"] = "message must be at least 10 characters"
	}
	return errs
}
