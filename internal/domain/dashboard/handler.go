package dashboard

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/platform/logger"
	"medtap-client/internal/session"
	"medtap-client/internal/web"
)

const (
	upcomingLimit = 3
	recentLimit   = 5
)

type API interface {
	ListAppointments(ctx context.Context) ([]appointments.Appointment, error)
	ListMedicalRecords(ctx context.Context) ([]records.MedicalRecord, error)
}

type Stats struct {
	Appointments int `json:"appointments"`
	Records      int `json:"records"`
	Documents    int `json:"documents"`
	Pets         int `json:"pets"`
}

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

type View struct {
	Page         string                     `json:"page"`
	Greeting     string                     `json:"greeting"`
	UserType     users.UserType             `json:"userType,omitempty"`
	Stats        Stats                      `json:"stats"`
	Upcoming     []appointments.Appointment `json:"upcomingAppointments"`
	Recent       []records.MedicalRecord    `json:"recentRecords"`
	QuickActions []QuickAction              `json:"quickActions"`
	Error        string                     `json:"error,omitempty"`
}

// Handler arma el dashboard: citas y registros se piden en paralelo y se esperan ambos.
// @Summary Dashboard
// @Description Carga citas y registros en paralelo. Si una carga falla sin 401 la página se muestra igual con el campo error.
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Router /dashboard [get]
func Handler(api API, sess session.Reader, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := sess.Snapshot()
		v := View{
			Page:     "dashboard",
			Greeting: "Welcome back, " + firstName(snap.User) + "!",
			Upcoming: []appointments.Appointment{},
			Recent:   []records.MedicalRecord{},
		}
		if snap.User != nil {
			v.UserType = snap.User.UserType
		}
		v.QuickActions = quickActions(v.UserType)

		var (
			appts []appointments.Appointment
			recs  []records.MedicalRecord
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			appts, err = api.ListAppointments(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			recs, err = api.ListMedicalRecords(ctx)
			return err
		})

		if err := g.Wait(); err != nil {
			// errgroup solo devuelve el primer error: un 401 de la otra carga ya limpió la sesión
			if errors.Is(err, httpclient.ErrUnauthorized) || sess.Token() == "" {
				web.Redirect(w, r, web.LoginPath)
				return
			}
			// la página se muestra igual, sin datos
			log.Warn("failed to load dashboard data", map[string]any{"error": err})
			v.Error = web.Message(err, "Failed to load dashboard data")
			web.WriteJSON(w, http.StatusOK, v)
			return
		}

		v.Stats = Stats{Appointments: len(appts), Records: len(recs)}
		v.Upcoming = append(v.Upcoming, appts[:min(upcomingLimit, len(appts))]...)
		v.Recent = append(v.Recent, recs[:min(recentLimit, len(recs))]...)
		web.WriteJSON(w, http.StatusOK, v)
	}
}

func firstName(u *users.SessionUser) string {
	if u != nil && u.Profile != nil && u.Profile.FirstName != "" {
		return u.Profile.FirstName
	}
	return "User"
}

func quickActions(t users.UserType) []QuickAction {
	out := []QuickAction{
		{Title: "Book Appointment", Description: "Schedule with a provider", Href: "/appointments"},
		{Title: "Add Record", Description: "Upload medical records", Href: "/medical-records"},
		{Title: "Body Scan", Description: "View 3D body map", Href: "/body-scan"},
		{Title: "Health Metrics", Description: "Track your vitals", Href: "/profile"},
	}
	switch t {
	case users.UserTypePetOwner:
		out = append(out, QuickAction{Title: "My Pets", Description: "Manage pet records", Href: "/pets"})
	case users.UserTypeVeteran:
		out = append(out, QuickAction{Title: "VA Benefits", Description: "Access veteran services", Href: "/veteran"})
	}
	return out
}
