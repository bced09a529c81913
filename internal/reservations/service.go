package reservations

import (
	"context"
	"fmt"

	"github.com/smarthub/restaurant-backend/internal/notify"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// RestaurantDetails is what the confirmation email says about the venue.
type RestaurantDetails struct {
	Name    string
	Phone   string
	Address string
}

// Service books a table and sends the confirmation email. The booking
// only counts as confirmed once the email went out, so an email failure
// fails the whole request.
type Service struct {
	repo       Repository
	emails     notify.EmailSender
	restaurant RestaurantDetails
	logger     *logging.Logger
}

// NewService creates the reservation service.
func NewService(repo Repository, emails notify.EmailSender, restaurant RestaurantDetails, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if emails == nil {
		emails = notify.NewStubEmailSender(logger)
	}
	return &Service{
		repo:       repo,
		emails:     emails,
		restaurant: restaurant,
		logger:     logger,
	}
}

// Book persists the reservation and emails the guest.
func (s *Service) Book(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	res, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	msg := notify.ReservationConfirmation(notify.ReservationDetails{
		Name:           res.Name,
		Email:          res.Email,
		Date:           res.Date,
		Time:           res.Time,
		Guests:         res.Guests,
		RestaurantName: s.restaurant.Name,
		Phone:          s.restaurant.Phone,
		Address:        s.restaurant.Address,
	})
	if err := s.emails.Send(ctx, msg); err != nil {
		s.logger.Error("reservation confirmation email failed", "error", err, "reservation_id", res.ID)
		return nil, fmt.Errorf("reservations: confirmation email failed: %w", err)
	}

	s.logger.Info("reservation booked", "reservation_id", res.ID, "guests", res.Guests, "date", res.Date)
	return res, nil
}
