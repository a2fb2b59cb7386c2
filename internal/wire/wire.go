package wire

import (
	"net/http"

	"github.com/adityaraj161616/Nirmalaya/internal/adaptor"
	"github.com/adityaraj161616/Nirmalaya/internal/data/draft"
	"github.com/adityaraj161616/Nirmalaya/internal/data/repository"
	"github.com/adityaraj161616/Nirmalaya/internal/notify"
	"github.com/adityaraj161616/Nirmalaya/internal/usecase"
	"github.com/adityaraj161616/Nirmalaya/pkg/middleware"
	"github.com/adityaraj161616/Nirmalaya/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, drafts draft.Store, config *utils.Config, logger *zap.Logger) *App {
	// Email transport: SendGrid when configured, logging stub otherwise
	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    config.Email.SendGridKey,
		FromEmail: config.Email.FromEmail,
		FromName:  config.Email.FromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		logger.Warn("SendGrid not configured, emails will be logged only")
		sender = notify.NewStubSender(logger)
	}
	dispatcher := notify.NewDispatcher(sender, config.Email, logger)

	service := usecase.NewService(repo, drafts, dispatcher, config, logger)
	handler := adaptor.NewHandler(service, dispatcher, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(nil))

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking)
	wireAppointment(r, handler.Appointment)
	wireNotify(r, handler.Notify)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
