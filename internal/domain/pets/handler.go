package pets

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/web"
)

const Path = "/pets"

type API interface {
	ListPets(ctx context.Context) ([]Pet, error)
	GetPet(ctx context.Context, id string) (Pet, error)
	CreatePet(ctx context.Context, in PetInput) (Pet, error)
	UpdatePet(ctx context.Context, id string, in PetInput) (Pet, error)
	DeletePet(ctx context.Context, id string) error
	ReportLostPet(ctx context.Context, id string, report LostReport) (Pet, error)
}

func RegisterRoutes(r chi.Router, api API) {
	r.Route(Path, func(pr chi.Router) {
		pr.Get("/", listPetsHandler(api))
		pr.Post("/", createPetHandler(api))

		pr.Get("/{petID}", getPetHandler(api))
		pr.Post("/{petID}", updatePetHandler(api))
		pr.Post("/{petID}/lost", reportLostHandler(api))
		pr.Post("/{petID}/delete", deletePetHandler(api))
	})
}

type listView struct {
	Page string `json:"page"`
	Pets []Pet  `json:"pets"`
	Lost int    `json:"lost"`
}

type detailView struct {
	Page        string        `json:"page"`
	Pet         Pet           `json:"pet"`
	VaccinesDue []Vaccination `json:"vaccinesDue"`
}

// @Summary Listar mascota
// @Tags pets
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets [get]
func listPetsHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := api.ListPets(r.Context())
		if err != nil {
			web.Fail(w, r, "pets", err, "Failed to load pets")
			return
		}
		if items == nil {
			items = []Pet{}
		}
		lost := 0
		for _, p := range items {
			if p.IsLost {
				lost++
			}
		}
		web.WriteJSON(w, http.StatusOK, listView{Page: "pets", Pets: items, Lost: lost})
	}
}

// @Summary Detalle de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets/{petID} [get]
func getPetHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := api.GetPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			web.Fail(w, r, "pet", err, "Failed to load pet")
			return
		}
		web.WriteJSON(w, http.StatusOK, detailView{Page: "pet", Pet: p, VaccinesDue: DueVaccinations(p, time.Now())})
	}
}

// @Summary Crear mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body object true "formulario"
// @Success 303 {string} string "Redirect to /pets (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets [post]
func createPetHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in PetInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "pets", http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.ValidateCreate(); err != nil {
			web.Inline(w, "pets", http.StatusBadRequest, err.Error())
			return
		}
		if !validDate(in.DateOfBirth) {
			web.Inline(w, "pets", http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		if _, err := api.CreatePet(r.Context(), in); err != nil {
			web.Fail(w, r, "pets", err, "Failed to save pet")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Actualizar mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body object true "campos parciales"
// @Success 303 {string} string "Redirect to the detail page (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets/{petID} [post]
func updatePetHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in PetInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "pet", http.StatusBadRequest, "invalid json")
			return
		}
		if !validDate(in.DateOfBirth) {
			web.Inline(w, "pet", http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		id := chi.URLParam(r, "petID")
		if _, err := api.UpdatePet(r.Context(), id, in); err != nil {
			web.Fail(w, r, "pet", err, "Failed to save pet")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Reportar mascota perdida
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body object true "{lastSeenLocation,lastSeenAt,contactPhone,description}"
// @Success 303 {string} string "Redirect to the pet (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets/{petID}/lost [post]
func reportLostHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rep LostReport
		if err := web.DecodeJSON(r, &rep); err != nil {
			web.Inline(w, "pet", http.StatusBadRequest, "invalid json")
			return
		}
		id := chi.URLParam(r, "petID")
		if _, err := api.ReportLostPet(r.Context(), id, rep); err != nil {
			web.Fail(w, r, "pet", err, "Failed to report lost pet")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Borrar mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 303 {string} string "Redirect to /pets (or /login)"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /pets/{petID}/delete [post]
func deletePetHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.DeletePet(r.Context(), chi.URLParam(r, "petID")); err != nil {
			web.Fail(w, r, "pets", err, "Failed to delete pet")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// DueVaccinations devuelve las vacunas con próxima dosis en los próximos 30 días (o vencidas).
func DueVaccinations(p Pet, now time.Time) []Vaccination {
	out := []Vaccination{}
	limit := now.AddDate(0, 0, 30)
	for _, v := range p.Vaccinations {
		if strings.TrimSpace(v.NextDueDate) == "" {
			continue
		}
		due, err := time.Parse("2006-01-02", v.NextDueDate)
		if err != nil {
			continue
		}
		if !due.After(limit) {
			out = append(out, v)
		}
	}
	return out
}

func validDate(s *string) bool {
	if s == nil || strings.TrimSpace(*s) == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	return err == nil
}
