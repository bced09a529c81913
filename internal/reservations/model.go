package reservations

import (
	"errors"
	"strings"
	"time"
)

// Reservation is a booked table.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Guests    int       `json:"guests"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Requests  *string   `json:"requests,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReservationRequest is the booking form payload.
type CreateReservationRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Guests   int     `json:"guests"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Requests *string `json:"requests"`
}

// ErrInvalidRequest flags a booking form with missing required fields.
var ErrInvalidRequest = errors.New("reservations: required fields missing")

// Validate checks the required booking fields. Requests is the only
// optional field.
func (r *CreateReservationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.Time) == "" ||
		r.Guests <= 0 {
		return ErrInvalidRequest
	}
	return nil
}
