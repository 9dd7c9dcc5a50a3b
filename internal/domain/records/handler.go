package records

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/web"
)

const Path = "/medical-records"

type API interface {
	ListMedicalRecords(ctx context.Context) ([]MedicalRecord, error)
	GetMedicalRecord(ctx context.Context, id string) (MedicalRecord, error)
	CreateMedicalRecord(ctx context.Context, in MedicalRecordInput) (MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, id string, in MedicalRecordInput) (MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, api API) {
	r.Route(Path, func(rr chi.Router) {
		rr.Get("/", listHandler(api))
		rr.Post("/", createHandler(api))
		rr.Get("/{id}", getHandler(api))
		rr.Post("/{id}", updateHandler(api))
		rr.Post("/{id}/delete", deleteHandler(api))
	})
}

type listView struct {
	Page     string          `json:"page"`
	Records  []MedicalRecord `json:"records"`
	Critical int             `json:"critical"`
	Filter   RecordType      `json:"filter,omitempty"`
}

type detailView struct {
	Page   string        `json:"page"`
	Record MedicalRecord `json:"record"`
}

// @Summary Listar registro médico
// @Tags records
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /medical-records [get]
func listHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := api.ListMedicalRecords(r.Context())
		if err != nil {
			web.Fail(w, r, "medical-records", err, "Failed to load medical records")
			return
		}

		filter := RecordType(r.URL.Query().Get("type"))
		out := make([]MedicalRecord, 0, len(items))
		critical := 0
		for _, rec := range items {
			if filter != "" && rec.RecordType != filter {
				continue
			}
			if rec.IsCritical {
				critical++
			}
			out = append(out, rec)
		}

		web.WriteJSON(w, http.StatusOK, listView{Page: "medical-records", Records: out, Critical: critical, Filter: filter})
	}
}

// @Summary Detalle de registro médico
// @Tags records
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /medical-records/{id} [get]
func getHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := api.GetMedicalRecord(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			web.Fail(w, r, "medical-record", err, "Failed to load medical record")
			return
		}
		web.WriteJSON(w, http.StatusOK, detailView{Page: "medical-record", Record: rec})
	}
}

// @Summary Crear registro médico
// @Tags records
// @Accept json
// @Produce json
// @Param payload body object true "formulario"
// @Success 303 {string} string "Redirect to /medical-records (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /medical-records [post]
func createHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in MedicalRecordInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "medical-records", http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.ValidateCreate(); err != nil {
			web.Inline(w, "medical-records", http.StatusBadRequest, err.Error())
			return
		}
		if _, err := api.CreateMedicalRecord(r.Context(), in); err != nil {
			web.Fail(w, r, "medical-records", err, "Failed to save medical record")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Actualizar registro médico
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "ID del recurso"
// @Param payload body object true "campos parciales"
// @Success 303 {string} string "Redirect to the detail page (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /medical-records/{id} [post]
func updateHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in MedicalRecordInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "medical-record", http.StatusBadRequest, "invalid json")
			return
		}
		if in.RecordType != nil && !in.RecordType.Valid() {
			web.Inline(w, "medical-record", http.StatusBadRequest, "Please select a record type")
			return
		}
		id := chi.URLParam(r, "id")
		if _, err := api.UpdateMedicalRecord(r.Context(), id, in); err != nil {
			web.Fail(w, r, "medical-record", err, "Failed to save medical record")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Borrar registro médico
// @Tags records
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 303 {string} string "Redirect to /medical-records (or /login)"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /medical-records/{id}/delete [post]
func deleteHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.DeleteMedicalRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
			web.Fail(w, r, "medical-records", err, "Failed to delete medical record")
			return
		}
		web.Redirect(w, r, Path)
	}
}
