package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "medtap-client/docs"
	"medtap-client/internal/adapters/medtapapi"
	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/auth"
	"medtap-client/internal/domain/bodyscans"
	"medtap-client/internal/domain/dashboard"
	"medtap-client/internal/domain/documents"
	"medtap-client/internal/domain/pets"
	"medtap-client/internal/domain/profile"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/middleware"
	"medtap-client/internal/platform/logger"
	"medtap-client/internal/session"
	"medtap-client/internal/web"
)

type Options struct {
	Session *session.Store
	API     *medtapapi.Client
	Logger  logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.SessionContext(opts.Session))

	r.Get("/health", healthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		web.Inline(w, "not-found", http.StatusNotFound, "Page not found")
	})

	// Públicas
	r.Get("/", dashboard.LandingHandler(opts.Session))
	auth.RegisterRoutes(r, opts.API)

	// Protegidas: solo presencia de token
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireSession(opts.Session, web.LoginPath))

		pr.Post("/logout", auth.LogoutHandler(opts.API, opts.Session, log))
		pr.Get(web.DashboardPath, dashboard.Handler(opts.API, opts.Session, log))

		profile.RegisterRoutes(pr, opts.API, opts.Session)
		records.RegisterRoutes(pr, opts.API)
		appointments.RegisterRoutes(pr, opts.API)
		documents.RegisterRoutes(pr, opts.API)
		bodyscans.RegisterRoutes(pr, opts.API)
		pets.RegisterRoutes(pr, opts.API)
	})

	return r
}

// @Summary Liveness
// @Tags infra
// @Produce json
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
