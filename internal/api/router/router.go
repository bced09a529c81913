package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smarthub/restaurant-backend/internal/cart"
	"github.com/smarthub/restaurant-backend/internal/chat"
	"github.com/smarthub/restaurant-backend/internal/contact"
	"github.com/smarthub/restaurant-backend/internal/favorites"
	httpmiddleware "github.com/smarthub/restaurant-backend/internal/http/middleware"
	"github.com/smarthub/restaurant-backend/internal/menu"
	"github.com/smarthub/restaurant-backend/internal/payments"
	"github.com/smarthub/restaurant-backend/internal/reservations"
	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger              *logging.Logger
	MenuHandler         *menu.Handler
	ChatHandler         *chat.Handler
	ContactHandler      *contact.Handler
	ReservationsHandler *reservations.Handler
	PaymentsHandler     *payments.Handler
	CartHandler         *cart.Handler
	FavoritesHandler    *favorites.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// SupabaseJWTSecret protects the cart and favorites routes. When
	// empty those routes reject everything.
	SupabaseJWTSecret string
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.MenuHandler != nil {
			public.Get("/api/menu", cfg.MenuHandler.ListItems)
			public.Get("/api/categories", cfg.MenuHandler.ListCategories)
		}
		if cfg.ChatHandler != nil {
			public.Post("/api/chat", cfg.ChatHandler.PostMessage)
			public.Get("/api/chat/ws", cfg.ChatHandler.HandleWebSocket)
		}
		if cfg.ContactHandler != nil {
			public.Post("/api/contact", cfg.ContactHandler.Create)
		}
		if cfg.ReservationsHandler != nil {
			public.Post("/api/reservations", cfg.ReservationsHandler.Create)
		}
		if cfg.PaymentsHandler != nil {
			public.Post("/api/create-payment-intent", cfg.PaymentsHandler.CreateIntent)
		}
	})

	// Signed-in user routes
	r.Group(func(user chi.Router) {
		user.Use(httpmiddleware.SupabaseAuth(cfg.SupabaseJWTSecret))

		if cfg.CartHandler != nil {
			user.Route("/api/cart", func(r chi.Router) {
				r.Get("/", cfg.CartHandler.List)
				r.Post("/", cfg.CartHandler.Add)
				r.Put("/{itemID}", cfg.CartHandler.UpdateQuantity)
				r.Delete("/{itemID}", cfg.CartHandler.Remove)
			})
		}
		if cfg.FavoritesHandler != nil {
			user.Route("/api/favorites", func(r chi.Router) {
				r.Get("/", cfg.FavoritesHandler.List)
				r.Post("/", cfg.FavoritesHandler.Add)
				r.Delete("/{menuItemID}", cfg.FavoritesHandler.Remove)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
