package documents

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/web"
)

const (
	Path = "/documents"

	maxUploadBytes = 32 << 20
)

type API interface {
	ListDocuments(ctx context.Context) ([]Document, error)
	GetDocument(ctx context.Context, id string) (Document, error)
	UploadDocument(ctx context.Context, in UploadInput) (Document, error)
	SignDocument(ctx context.Context, id, signatureData string) (Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

func RegisterRoutes(r chi.Router, api API) {
	r.Route(Path, func(rr chi.Router) {
		rr.Get("/", listHandler(api))
		rr.Post("/upload", uploadHandler(api))
		rr.Get("/{id}", getHandler(api))
		rr.Post("/{id}/sign", signHandler(api))
		rr.Post("/{id}/delete", deleteHandler(api))
	})
}

type listView struct {
	Page             string     `json:"page"`
	Documents        []Document `json:"documents"`
	PendingSignature int        `json:"pendingSignature"`
}

type detailView struct {
	Page     string   `json:"page"`
	Document Document `json:"document"`
}

// @Summary Listar documento
// @Tags documents
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /documents [get]
func listHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := api.ListDocuments(r.Context())
		if err != nil {
			web.Fail(w, r, "documents", err, "Failed to load documents")
			return
		}
		if items == nil {
			items = []Document{}
		}
		pending := 0
		for _, d := range items {
			if !d.Signed() && (d.DocumentType == TypeConsentForm || d.DocumentType == TypeMedicalForm) {
				pending++
			}
		}
		web.WriteJSON(w, http.StatusOK, listView{Page: "documents", Documents: items, PendingSignature: pending})
	}
}

// @Summary Detalle de documento
// @Tags documents
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Success 303 {string} string "Redirect to /login without session or when the session expired"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /documents/{id} [get]
func getHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := api.GetDocument(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			web.Fail(w, r, "document", err, "Failed to load document")
			return
		}
		web.WriteJSON(w, http.StatusOK, detailView{Page: "document", Document: d})
	}
}

// uploadHandler reenvía el archivo del form multipart al servicio remoto sin tocar disco propio.
// @Summary Subir documento
// @Tags documents
// @Accept mpfd
// @Produce json
// @Param documentType formData string true "Tipo de documento"
// @Param title formData string true "Título"
// @Param description formData string false "Descripción"
// @Param file formData file true "Archivo (máx. 32MB)"
// @Success 303 {string} string "Redirect to /documents (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 413 {string} string "File is too large"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /documents/upload [post]
func uploadHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				web.Inline(w, "documents", http.StatusRequestEntityTooLarge, "File is too large")
				return
			}
			web.Inline(w, "documents", http.StatusBadRequest, "invalid multipart form")
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		in := UploadInput{
			DocumentType: DocumentType(strings.TrimSpace(r.FormValue("documentType"))),
			Title:        strings.TrimSpace(r.FormValue("title")),
			Description:  strings.TrimSpace(r.FormValue("description")),
		}
		f, hdr, err := r.FormFile("file")
		if err == nil {
			defer f.Close()
			in.File = f
			in.FileName = hdr.Filename
			in.ContentType = hdr.Header.Get("Content-Type")
		}
		if in.Title == "" && in.FileName != "" {
			in.Title = in.FileName
		}

		if err := in.Validate(); err != nil {
			web.Inline(w, "documents", http.StatusBadRequest, err.Error())
			return
		}
		if _, err := api.UploadDocument(r.Context(), in); err != nil {
			web.Fail(w, r, "documents", err, "Failed to upload document")
			return
		}
		web.Redirect(w, r, Path)
	}
}

// @Summary Firmar documento
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "ID del recurso"
// @Param payload body object true "{signatureData}"
// @Success 303 {string} string "Redirect to the document (or /login)"
// @Failure 400 {string} string "error inline del formulario"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /documents/{id}/sign [post]
func signHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in SignInput
		if err := web.DecodeJSON(r, &in); err != nil {
			web.Inline(w, "document", http.StatusBadRequest, "invalid json")
			return
		}
		if strings.TrimSpace(in.SignatureData) == "" {
			web.Inline(w, "document", http.StatusBadRequest, "Signature is required")
			return
		}
		id := chi.URLParam(r, "id")
		if _, err := api.SignDocument(r.Context(), id, in.SignatureData); err != nil {
			web.Fail(w, r, "document", err, "Failed to sign document")
			return
		}
		web.Redirect(w, r, Path+"/"+id)
	}
}

// @Summary Borrar documento
// @Tags documents
// @Produce json
// @Param id path string true "ID del recurso"
// @Success 303 {string} string "Redirect to /documents (or /login)"
// @Failure 404 {string} string "no encontrado"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /documents/{id}/delete [post]
func deleteHandler(api API) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
			web.Fail(w, r, "documents", err, "Failed to delete document")
			return
		}
		web.Redirect(w, r, Path)
	}
}
