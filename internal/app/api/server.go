package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"food-delivery/internal/browsing"
	"food-delivery/internal/common/cache"
	"food-delivery/internal/common/httpx"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/common/metrics"
	"food-delivery/internal/ordering"
	"food-delivery/internal/payments"
	"food-delivery/internal/registration"
)

// DefaultRestaurant is the menu a fresh session starts on, matching the
// demo's fixed Burger/Pizza/Salad menu.
const DefaultRestaurant = "Burger King"

const defaultDeliveryAddress = "123 Main St"

// Server wires the registration, browsing and ordering services behind
// the HTTP API the client drives.
type Server struct {
	log          *logger.Logger
	sessions     *SessionManager
	registration *registration.Service
	browsing     *browsing.Browsing
	gateway      *payments.Processing
	publisher    EventPublisher
	cache        cache.Cache
	metrics      *metrics.ServerMetrics
	ids          ordering.IDGenerator
}

type Options struct {
	Registration *registration.Service
	Browsing     *browsing.Browsing
	Publisher    EventPublisher
	Cache        cache.Cache
	Metrics      *metrics.ServerMetrics
	IDs          ordering.IDGenerator
}

func NewServer(log *logger.Logger, opts Options) *Server {
	s := &Server{
		log:          log,
		sessions:     NewSessionManager(),
		registration: opts.Registration,
		browsing:     opts.Browsing,
		gateway:      payments.NewProcessing(),
		publisher:    opts.Publisher,
		cache:        opts.Cache,
		metrics:      opts.Metrics,
		ids:          opts.IDs,
	}
	if s.publisher == nil {
		s.publisher = NoopPublisher{}
	}
	if s.cache == nil {
		s.cache = cache.Noop{}
	}
	if s.ids == nil {
		s.ids = ordering.NewDailySequence()
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(observe(s.log, s.metrics))

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", s.handleListRestaurants)
		r.Get("/search", s.handleSearchRestaurants)
		r.Get("/{name}/menu", s.handleMenu)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Post("/session/restaurant", s.handleSelectRestaurant)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleViewCart)
			r.Post("/items", s.handleAddItem)
			r.Delete("/items/{name}", s.handleRemoveItem)
		})
		r.Route("/order", func(r chi.Router) {
			r.Post("/validate", s.handleValidateOrder)
			r.Get("/checkout", s.handleCheckout)
			r.Post("/confirm", s.handleConfirmOrder)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// Run serves the API until ctx is cancelled.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := httpx.New(":"+strconv.Itoa(port), s.Router())
	s.log.Info("service_started", map[string]any{"service": "api-server", "port": port})
	return srv.Run(ctx)
}
