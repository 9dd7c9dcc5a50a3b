package appointments

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/web"
)

const Path = "/appointments"

type API interface {
	ListAppointments(ctx context.Context) ([]Appointment, error)
	GetAppointment(ctx context.Context, id string) (Appointment, error)
	CreateAppointment(ctx context.Context, in AppointmentInput) (Appointment, error)
	UpdateAppointment(ctx context.Context, id string, in AppointmentInput) (Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, api API) {
	r.Route(Path, func(rr chi.Router) {
		rr.Get("/", listHandler(api))
		rr.Post("/", createHandler(api))
		rr.Get("/{id}", getHandler(api))
		rr.Post("/{id}", updateHandler(api))
		rr.Post("/{id}/cancel", cancelHandler(api))
	})
}

type listView struct {
	Page     string        `json:"page"`
	Upcoming []Appointment `json:"upcoming"`
	Past     []Appointment `json:"past"`
}

type detailView struct {
	Page        string      `json:"page"`
	Appointment Appointment `json:"appointment"`
}

// @Summary Listar cita
// @Tags appointments
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /appointments [get]
func listHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := api.ListAppointments(r.Context())
		if err != nil {
			web.Fail(w, r, "appointments", err, "Failed to load appointments")
			return
		}

		v := listView{Page: "appointments", Upcoming: []Appointment{}, Past: []Appointment{}}
		for _, a := range items {
			if a.Status.Upcoming() {
				v.Upcoming = append(v.Upcoming, a)
			} else {
				v.Past = append(v.Past, a)
			}
		}
		web.WriteJSON(w, http.StatusOK, v)
	}
}

// @Summary Detalle de cita
// @Tags appointments
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /appointments/{id} [get]
func getHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := api.GetAppointment(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			web.Fail(w, r, "appointment", err, "Failed to load appointment")
			return
		}
		web.WriteJSON(w, http.StatusOK, detailView{Page: "appointment", Appointment: a})
	}
}

// @Summary Crear cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body object true "formulario"
// @Success 303 {string} string "Redirect to /appointments (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /appointments [post]
func createHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in AppointmentInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "appointments", http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.ValidateCreate(); err != nil {
			web.Inline(w, "appointments", http.StatusBadRequest, err.Error())
			return
		}
		if _, err := api.CreateAppointment(r.Context(), in); err != nil {
			web.Fail(w, r, "appointments", err, "Failed to book appointment")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Actualizar cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "ID del recurso"
// @Param payload body object true "campos parciales"
// @Success 303 {string} string "Redirect to the detail page (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /appointments/{id} [post]
func updateHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in AppointmentInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "appointment", http.StatusBadRequest, "invalid json")
			return
		}
		if in.AppointmentType != nil && !in.AppointmentType.Valid() {
			web.Inline(w, "appointment", http.StatusBadRequest, "Please select an appointment type")
			return
		}
		id := chi.URLParam(r, "id")
		if _, err := api.UpdateAppointment(r.Context(), id, in); err != nil {
			web.Fail(w, r, "appointment", err, "Failed to update appointment")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Cancelar cita
// @Tags appointments
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 303 {string} string "Redirect to /appointments (or /login)"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /appointments/{id}/cancel [post]
func cancelHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.CancelAppointment(r.Context(), chi.URLParam(r, "id")); err != nil {
			web.Fail(w, r, "appointments", err, "Failed to cancel appointment")
			return
		}
		web.Redirect(w, r, Path)
	}
}
