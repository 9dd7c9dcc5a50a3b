// Package medtapapitest levanta un servicio MedTap falso para tests.
package medtapapitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/auth"
	"medtap-client/internal/domain/bodyscans"
	"medtap-client/internal/domain/documents"
	"medtap-client/internal/domain/metrics"
	"medtap-client/internal/domain/pets"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/domain/users"
)

const (
	BasePath = "/api/v1"

	Email    = "a@b.com"
	Password = "secret12"
)

var signingKey = []byte("medtapapitest")

// Call registra un request recibido.
type Call struct {
	Method        string
	Path          string
	Query         string
	Authorization string
}

type forced struct {
	status int
	msg    string
}

// Server es un servicio remoto en memoria. Los campos exportados se pueden
// ajustar antes de disparar requests.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	calls  []Call
	valid  map[string]bool
	force  map[string]forced
	nextTk string

	User          users.SessionUser
	Records       []records.MedicalRecord
	Appointments  []appointments.Appointment
	Documents     []documents.Document
	Pets          []pets.Pet
	BodyScans     []bodyscans.BodyScan
	HealthMetrics []metrics.HealthMetric
	Uploads       []string
}

func NewServer() *Server {
	s := &Server{
		valid: make(map[string]bool),
		force: make(map[string]forced),
		User: users.SessionUser{User: users.User{
			ID:       "u1",
			Email:    Email,
			UserType: users.UserTypeIndividual,
			Status:   users.UserStatusActive,
		}},
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Route(BasePath, func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.Post("/auth/register", s.register)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Get("/auth/me", s.me)
			r.Post("/auth/logout", s.logout)
			r.Get("/profile", s.getProfile)
			r.Put("/profile", s.putProfile)

			r.Get("/medical-records", list(s, &s.Records))
			r.Post("/medical-records", s.createRecord)
			r.Delete("/medical-records/{id}", remove(s, &s.Records, func(v records.MedicalRecord) string { return v.ID }))

			r.Get("/appointments", list(s, &s.Appointments))
			r.Post("/appointments", s.createAppointment)
			r.Patch("/appointments/{id}/cancel", s.cancelAppointment)

			r.Get("/documents", list(s, &s.Documents))
			r.Post("/documents/upload", s.uploadDocument)
			r.Post("/documents/{id}/sign", s.signDocument)
			r.Delete("/documents/{id}", remove(s, &s.Documents, func(v documents.Document) string { return v.ID }))

			r.Get("/pets", list(s, &s.Pets))
			r.Post("/pets", s.createPet)
			r.Post("/pets/{id}/lost", s.reportLost)
			r.Delete("/pets/{id}", remove(s, &s.Pets, func(v pets.Pet) string { return v.ID }))

			r.Get("/body-scans", list(s, &s.BodyScans))
			r.Post("/body-scans", s.createBodyScan)
			r.Delete("/body-scans/{id}", remove(s, &s.BodyScans, func(v bodyscans.BodyScan) string { return v.ID }))

			r.Get("/health-metrics", list(s, &s.HealthMetrics))
			r.Post("/health-metrics", s.recordMetric)
		})
	})

	s.Server = httptest.NewServer(r)
	return s
}

// APIURL es la base que recibe el cliente (incluye /api/v1).
func (s *Server) APIURL() string {
	return s.Server.URL + BasePath
}

// Calls devuelve una copia de los requests recibidos.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo filtra por método y path relativo a BasePath.
func (s *Server) CallsTo(method, path string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == BasePath+path {
			out = append(out, c)
		}
	}
	return out
}

// Force hace que method+path responda status con {"error": msg}.
func (s *Server) Force(method, path string, status int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.force[method+" "+BasePath+path] = forced{status: status, msg: msg}
}

// NextToken fija el token que devolverá el próximo login/registro.
func (s *Server) NextToken(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTk = tok
}

// Revoke invalida todos los tokens emitidos.
func (s *Server) Revoke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = make(map[string]bool)
}

// MintToken firma un JWT con sub y exp (HS256).
func MintToken(sub string, ttl time.Duration) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	return tok
}

func (s *Server) issue() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok := s.nextTk
	s.nextTk = ""
	if tok == "" {
		tok = MintToken(s.User.ID, time.Hour)
	}
	s.valid[tok] = true
	return tok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
		})
		f, ok := s.force[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			writeError(w, f.status, f.msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		ok := tok != "" && s.valid[tok]
		s.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in auth.LoginCredentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	s.mu.Lock()
	u := s.User
	s.mu.Unlock()
	if in.Email != u.Email || in.Password != Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, auth.AuthResponse{Token: s.issue(), User: u})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var in auth.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	s.mu.Lock()
	if in.Email == s.User.Email {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	s.User = users.SessionUser{
		User: users.User{
			ID:       uuid.NewString(),
			Email:    in.Email,
			UserType: in.UserType,
			Status:   users.UserStatusPendingVerification,
		},
		Profile: &users.Profile{FirstName: in.FirstName, LastName: in.LastName},
	}
	u := s.User
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, auth.AuthResponse{Token: s.issue(), User: u})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u := s.User
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, auth.MeResponse{User: u})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.mu.Lock()
	delete(s.valid, tok)
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := users.Profile{UserID: s.User.ID}
	if s.User.Profile != nil {
		p = *s.User.Profile
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	var patch users.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	base := users.Profile{ID: "p-" + s.User.ID, UserID: s.User.ID}
	if s.User.Profile != nil {
		base = *s.User.Profile
	}
	p := patch.Apply(base)
	s.User.Profile = &p
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var in records.MedicalRecordInput
	if !decode(w, r, &in) {
		return
	}
	rec := records.MedicalRecord{ID: uuid.NewString(), UserID: s.userID(), RecordType: deref(in.RecordType), Title: deref(in.Title), Date: deref(in.Date)}
	s.mu.Lock()
	s.Records = append(s.Records, rec)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var in appointments.AppointmentInput
	if !decode(w, r, &in) {
		return
	}
	a := appointments.Appointment{
		ID:              uuid.NewString(),
		UserID:          s.userID(),
		AppointmentType: deref(in.AppointmentType),
		Status:          appointments.StatusScheduled,
		ProviderName:    deref(in.ProviderName),
		AppointmentDate: deref(in.AppointmentDate),
		Duration:        30,
	}
	s.mu.Lock()
	s.Appointments = append(s.Appointments, a)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) cancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			s.Appointments[i].Status = appointments.StatusCancelled
			writeJSON(w, http.StatusOK, s.Appointments[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Appointment not found")
}

func (s *Server) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart")
		return
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()
	b, _ := io.ReadAll(f)

	d := documents.Document{
		ID:           uuid.NewString(),
		UserID:       s.userID(),
		DocumentType: documents.DocumentType(r.FormValue("documentType")),
		Status:       "uploaded",
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		FileName:     hdr.Filename,
		FileSize:     int64(len(b)),
		FileURL:      fmt.Sprintf("/files/%s", hdr.Filename),
		MimeType:     hdr.Header.Get("Content-Type"),
	}
	s.mu.Lock()
	s.Documents = append(s.Documents, d)
	s.Uploads = append(s.Uploads, string(b))
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) signDocument(w http.ResponseWriter, r *http.Request) {
	var in documents.SignInput
	if !decode(w, r, &in) {
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			s.Documents[i].SignatureData = in.SignatureData
			s.Documents[i].SignedAt = time.Now().UTC().Format(time.RFC3339)
			writeJSON(w, http.StatusOK, s.Documents[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Document not found")
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	var in pets.PetInput
	if !decode(w, r, &in) {
		return
	}
	p := pets.Pet{ID: uuid.NewString(), OwnerID: s.userID(), Name: deref(in.Name), PetType: deref(in.PetType), Gender: deref(in.Gender)}
	s.mu.Lock()
	s.Pets = append(s.Pets, p)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) reportLost(w http.ResponseWriter, r *http.Request) {
	var in pets.LostReport
	if !decode(w, r, &in) {
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Pets {
		if s.Pets[i].ID == id {
			s.Pets[i].IsLost = true
			writeJSON(w, http.StatusOK, s.Pets[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Pet not found")
}

func (s *Server) createBodyScan(w http.ResponseWriter, r *http.Request) {
	var in bodyscans.BodyScanInput
	if !decode(w, r, &in) {
		return
	}
	b := bodyscans.BodyScan{
		ID:         uuid.NewString(),
		UserID:     s.userID(),
		BodyPart:   deref(in.BodyPart),
		ScanType:   deref(in.ScanType),
		Title:      deref(in.Title),
		Date:       deref(in.Date),
		Position3D: in.Position3D,
		IsActive:   true,
	}
	s.mu.Lock()
	s.BodyScans = append(s.BodyScans, b)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) recordMetric(w http.ResponseWriter, r *http.Request) {
	var in metrics.HealthMetricInput
	if !decode(w, r, &in) {
		return
	}
	m := metrics.HealthMetric{
		ID:         uuid.NewString(),
		UserID:     s.userID(),
		MetricType: in.MetricType,
		Value:      in.Value,
		Unit:       in.Unit,
		Timestamp:  in.Timestamp,
	}
	if m.Timestamp == "" {
		m.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	s.mu.Lock()
	s.HealthMetrics = append(s.HealthMetrics, m)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, m)
}

func list[T any](s *Server, items *[]T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		out := append(make([]T, 0, len(*items)), *items...)
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, out)
	}
}

func remove[T any](s *Server, items *[]T, idOf func(T) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, v := range *items {
			if idOf(v) == id {
				*items = append((*items)[:i], (*items)[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeError(w, http.StatusNotFound, "Not found")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) userID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User.ID
}
