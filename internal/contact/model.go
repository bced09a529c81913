package contact

import (
	"errors"
	"strings"
)

// Submission is one contact form message.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ErrInvalidSubmission flags a form with any empty field.
var ErrInvalidSubmission = errors.New("contact: all fields required")

// Validate checks that every field is present; the form has no optional
// fields.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" ||
		strings.TrimSpace(s.Email) == "" ||
		strings.TrimSpace(s.Subject) == "" ||
		strings.TrimSpace(s.Message) == "" {
		return ErrInvalidSubmission
	}
	return nil
}
