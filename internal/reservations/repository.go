package reservations

import "context"

// Repository persists reservations.
type Repository interface {
	Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error)
}
