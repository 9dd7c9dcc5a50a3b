package profile

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"medtap-client/internal/domain/metrics"
	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/session"
	"medtap-client/internal/web"
)

const (
	Path           = "/profile"
	OnboardingPath = "/onboarding"
	VeteranPath    = "/veteran"
)

type API interface {
	CurrentUser(ctx context.Context) (users.SessionUser, error)
	GetProfile(ctx context.Context) (users.Profile, error)
	UpdateProfile(ctx context.Context, patch users.ProfilePatch) (users.Profile, error)
	ListHealthMetrics(ctx context.Context, f metrics.Filter) ([]metrics.HealthMetric, error)
	RecordHealthMetric(ctx context.Context, in metrics.HealthMetricInput) (metrics.HealthMetric, error)
}

// Session: lo que estas páginas leen y refrescan del store.
type Session interface {
	Token() string
	Snapshot() session.State
	Begin(key string) session.Ticket
	RefreshUser(t session.Ticket, u users.SessionUser) bool
	RefreshProfile(t session.Ticket, p users.Profile) bool
	UpdateProfile(patch users.ProfilePatch)
}

func RegisterRoutes(r chi.Router, api API, sess Session) {
	r.Get(OnboardingPath, onboardingHandler(api, sess))
	r.Get(VeteranPath, veteranHandler(sess))

	r.Route(Path, func(pr chi.Router) {
		pr.Get("/", profileHandler(api, sess))
		pr.Post("/", updateProfileHandler(api, sess))
		pr.Post("/metrics", recordMetricHandler(api))
	})
}

type onboardingView struct {
	Page  string             `json:"page"`
	User  *users.SessionUser `json:"user,omitempty"`
	Steps []string           `json:"steps"`
	Next  string             `json:"next"`
	Error string             `json:"error,omitempty"`
}

type profileView struct {
	Page           string                 `json:"page"`
	User           *users.SessionUser     `json:"user,omitempty"`
	Profile        users.Profile          `json:"profile"`
	Metrics        []metrics.HealthMetric `json:"metrics"`
	TokenExpiresAt *time.Time             `json:"tokenExpiresAt,omitempty"`
	Error          string                 `json:"error,omitempty"`
}

type veteranView struct {
	Page     string                 `json:"page"`
	Eligible bool                   `json:"eligible"`
	User     *users.SessionUser     `json:"user,omitempty"`
	Services []users.VeteranService `json:"services"`
}

func onboardingSteps(t users.UserType) []string {
	steps := []string{"Complete your profile", "Add your medical history"}
	switch t {
	case users.UserTypePetOwner:
		steps = append(steps, "Register your pets")
	case users.UserTypeVeteran:
		steps = append(steps, "Link your VA benefits")
	}
	return append(steps, "Book your first appointment")
}

// @Summary Onboarding
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Router /onboarding [get]
func onboardingHandler(api API, sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := sess.Begin(session.KeyUser)
		v := onboardingView{Page: "onboarding", Next: web.DashboardPath}

		u, err := api.CurrentUser(r.Context())
		switch {
		case errors.Is(err, httpclient.ErrUnauthorized):
			web.Fail(w, r, v.Page, err, "")
			return
		case err != nil:
			// se muestra lo cacheado
			v.Error = web.Message(err, "Could not refresh your account")
		default:
			sess.RefreshUser(t, u)
		}

		snap := sess.Snapshot()
		v.User = snap.User
		var ut users.UserType
		if snap.User != nil {
			ut = snap.User.UserType
		}
		v.Steps = onboardingSteps(ut)
		web.WriteJSON(w, http.StatusOK, v)
	}
}

// @Summary Perfil y métricas
// @Tags profile
// @Produce json
// @Param metricType query string false "Filtro por tipo de métrica"
// @Param startDate query string false "Desde (YYYY-MM-DD)"
// @Param endDate query string false "Hasta (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /profile [get]
func profileHandler(api API, sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := metrics.Filter{
			MetricType: metrics.MetricType(q.Get("metricType")),
			StartDate:  q.Get("startDate"),
			EndDate:    q.Get("endDate"),
		}

		t := sess.Begin(session.KeyProfile)
		var (
			p    users.Profile
			list []metrics.HealthMetric
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			p, err = api.GetProfile(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			list, err = api.ListHealthMetrics(ctx, filter)
			return err
		})
		if err := g.Wait(); err != nil {
			if sess.Token() == "" {
				web.Redirect(w, r, web.LoginPath)
				return
			}
			web.Fail(w, r, "profile", err, "Failed to load profile")
			return
		}

		sess.RefreshProfile(t, p)
		snap := sess.Snapshot()

		v := profileView{Page: "profile", User: snap.User, Profile: p, Metrics: list}
		if v.Metrics == nil {
			v.Metrics = []metrics.HealthMetric{}
		}
		if exp, ok := session.TokenExpiry(snap.Token); ok {
			v.TokenExpiresAt = &exp
		}
		web.WriteJSON(w, http.StatusOK, v)
	}
}

// @Summary Actualizar perfil
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body object true "campos parciales del perfil"
// @Success 303 {string} string "Redirect to /profile (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /profile [post]
func updateProfileHandler(api API, sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch users.ProfilePatch
		if err := web.DecodeJSON(r, &patch); err != nil {
			web.Inline(w, "profile", http.StatusBadRequest, "invalid json")
			return
		}
		if _, err := api.UpdateProfile(r.Context(), patch); err != nil {
			web.Fail(w, r, "profile", err, "Failed to update profile")
			return
		}
		sess.UpdateProfile(patch)
		web.Redirect(w, r, Path)
	}
}

// @Summary Registrar métrica
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body object true "{metricType,value,unit,timestamp}"
// @Success 303 {string} string "Redirect to /profile (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /profile/metrics [post]
func recordMetricHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in metrics.HealthMetricInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "profile", http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.Validate(); err != nil {
			web.Inline(w, "profile", http.StatusBadRequest, err.Error())
			return
		}
		if _, err := api.RecordHealthMetric(r.Context(), in); err != nil {
			web.Fail(w, r, "profile", err, "Failed to record health metric")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Servicios para veteranos
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Router /veteran [get]
func veteranHandler(sess Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := sess.Snapshot()
		v := veteranView{Page: "veteran", User: snap.User, Services: users.VeteranServices}
		v.Eligible = snap.User != nil && snap.User.UserType == users.UserTypeVeteran
		web.WriteJSON(w, http.StatusOK, v)
	}
}
