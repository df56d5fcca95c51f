package contact

import (
	"context"

	"github.com/google/uuid"
)

// Service dispatches validated contact messages to the mailer and tags
// each submission with a reference id for support follow-up.
type Service struct {
	mailer Mailer
}

func NewService(mailer Mailer) *Service {
	return &Service{mailer: mailer}
}

// Submit sends the message and returns its reference id. The reference is
// generated before dispatch so failures can be correlated in the logs.
func (s *Service) Submit(ctx context.Context, m Message) (string, error) {
	reference := uuid.NewString()
	if err := s.mailer.Send(ctx, m); err != nil {
		return reference, err
	}
	return reference, nil
}
