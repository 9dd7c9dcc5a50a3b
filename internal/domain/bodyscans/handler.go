package bodyscans

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/web"
)

const Path = "/body-scan"

type API interface {
	ListBodyScans(ctx context.Context) ([]BodyScan, error)
	GetBodyScan(ctx context.Context, id string) (BodyScan, error)
	CreateBodyScan(ctx context.Context, in BodyScanInput) (BodyScan, error)
	UpdateBodyScan(ctx context.Context, id string, in BodyScanInput) (BodyScan, error)
	DeleteBodyScan(ctx context.Context, id string) error
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
	Page   string                `json:"page"`
	Scans  []BodyScan            `json:"scans"`
	ByPart map[string][]BodyScan `json:"byBodyPart"`
}

type detailView struct {
	Page string   `json:"page"`
	Scan BodyScan `json:"scan"`
}

// @Summary Listar marca corporal
// @Tags body-scan
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /body-scan [get]
func listHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := api.ListBodyScans(r.Context())
		if err != nil {
			web.Fail(w, r, "body-scan", err, "Failed to load body scans")
			return
		}
		if items == nil {
			items = []BodyScan{}
		}
		web.WriteJSON(w, http.StatusOK, listView{Page: "body-scan", Scans: items, ByPart: GroupByBodyPart(items)})
	}
}

// @Summary Detalle de marca corporal
// @Tags body-scan
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /body-scan/{id} [get]
func getHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := api.GetBodyScan(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			web.Fail(w, r, "body-scan", err, "Failed to load body scan")
			return
		}
		web.WriteJSON(w, http.StatusOK, detailView{Page: "body-scan", Scan: s})
	}
}

// @Summary Crear marca corporal
// @Tags body-scan
// @Accept json
// @Produce json
// @Param payload body object true "formulario"
// @Success 303 {string} string "Redirect to /body-scan (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /body-scan [post]
func createHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in BodyScanInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "body-scan", http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.ValidateCreate(); err != nil {
			web.Inline(w, "body-scan", http.StatusBadRequest, err.Error())
			return
		}
		if _, err := api.CreateBodyScan(r.Context(), in); err != nil {
			web.Fail(w, r, "body-scan", err, "Failed to save body scan")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Actualizar marca corporal
// @Tags body-scan
// @Accept json
// @Produce json
// @Param id path string true "ID del recurso"
// @Param payload body object true "campos parciales"
// @Success 303 {string} string "Redirect to the detail page (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /body-scan/{id} [post]
func updateHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in BodyScanInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "body-scan", http.StatusBadRequest, "invalid json")
			return
		}
		id := chi.URLParam(r, "id")
		if _, err := api.UpdateBodyScan(r.Context(), id, in); err != nil {
			web.Fail(w, r, "body-scan", err, "Failed to save body scan")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Borrar marca corporal
// @Tags body-scan
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 303 {string} string "Redirect to /body-scan (or /login)"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /body-scan/{id}/delete [post]
func deleteHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.DeleteBodyScan(r.Context(), chi.URLParam(r, "id")); err != nil {
			web.Fail(w, r, "body-scan", err, "Failed to delete body scan")
			return
		}
		web.Redirect(w, r, Path)
	}
}
