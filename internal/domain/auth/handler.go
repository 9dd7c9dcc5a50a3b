package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/logger"
	"medtap-client/internal/web"
)

const OnboardingPath = "/onboarding"

// API es lo que las páginas de auth usan del cliente remoto.
// Login y Register escriben la sesión ellos mismos.
type API interface {
	Login(ctx context.Context, creds LoginCredentials) (AuthResponse, error)
	Register(ctx context.Context, data RegisterData) (AuthResponse, error)
	Logout(ctx context.Context) error
}

// SessionClearer limpia la sesión local aunque el logout remoto falle.
type SessionClearer interface {
	ClearAuth()
}

// RegisterRoutes monta las rutas públicas de login/registro.
// POST /logout se monta aparte con LogoutHandler (ruta protegida).
func RegisterRoutes(r chi.Router, api API) {
	r.Get("/login", loginPageHandler())
	r.Post("/login", loginHandler(api))
	r.Get("/register", registerPageHandler())
	r.Post("/register", registerHandler(api))
}

type loginView struct {
	Page  string `json:"page"`
	Error string `json:"error,omitempty"`
}

type userTypeOption struct {
	Type        users.UserType `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
}

var userTypeOptions = []userTypeOption{
	{users.UserTypeIndividual, "Individual", "Personal healthcare management"},
	{users.UserTypePetOwner, "Pet Owner", "Healthcare management for your pets"},
	{users.UserTypeVeteran, "Veteran", "Access veteran services and VA benefits"},
}

type registerView struct {
	Page      string           `json:"page"`
	UserTypes []userTypeOption `json:"userTypes"`
	MinLength int              `json:"minPasswordLength"`
}

// @Summary Formulario de login
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Router /login [get]
func loginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, loginView{Page: "login"})
	}
}

// @Summary Login
// @Tags public
// @Accept json
// @Produce json
// @Param payload body object true "{email,password}"
// @Success 303 {string} string "Redirect to /dashboard"
// @Failure 400 {string} string "Email and password are required"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /login [post]
func loginHandler(api API) http.HandlerFunc {
	const fallback = "Login failed. Please try again."
	return func(w http.ResponseWriter, r *http.Request) {
		var creds LoginCredentials
		if err := web.DecodeJSON(r, &creds); err != nil {
			web.Inline(w, "login", http.StatusBadRequest, "invalid json")
			return
		}
		creds.Email = strings.TrimSpace(creds.Email)
		if creds.Email == "" || creds.Password == "" {
			web.Inline(w, "login", http.StatusBadRequest, "Email and password are required")
			return
		}

		if _, err := api.Login(r.Context(), creds); err != nil {
			// credenciales malas también son 401: acá es error inline, no navegación
			web.Inline(w, "login", web.StatusFor(err), web.Message(err, fallback))
			return
		}
		web.Redirect(w, r, web.DashboardPath)
	}
}

// @Summary Formulario de registro
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Router /register [get]
func registerPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, registerView{
			Page:      "register",
			UserTypes: userTypeOptions,
			MinLength: MinPasswordLength,
		})
	}
}

// @Summary Registro
// @Description Valida localmente (confirmación, largo mínimo en caracteres, tipo de usuario) antes de llamar al servicio.
// @Tags public
// @Accept json
// @Produce json
// @Param payload body object true "{email,password,confirmPassword,userType,firstName,lastName}"
// @Success 303 {string} string "Redirect to /onboarding"
// @Failure 400 {string} string "Passwords do not match | Password must be at least 8 characters | Please select a user type"
// @Failure 502 {string} string "falla del servicio remoto"
// @Router /register [post]
func registerHandler(api API) http.HandlerFunc {
	const fallback = "Registration failed. Please try again."
	return func(w http.ResponseWriter, r *http.Request) {
		var form RegisterForm
		if err := web.DecodeJSON(r, &form); err != nil {
			web.Inline(w, "register", http.StatusBadRequest, "invalid json")
			return
		}
		form.Email = strings.TrimSpace(form.Email)

		// validación local: ninguna llamada remota si falla
		if err := form.Validate(); err != nil {
			web.Inline(w, "register", http.StatusBadRequest, err.Error())
			return
		}

		if _, err := api.Register(r.Context(), form.RegisterData); err != nil {
			web.Inline(w, "register", web.StatusFor(err), web.Message(err, fallback))
			return
		}
		web.Redirect(w, r, OnboardingPath)
	}
}

// LogoutHandler avisa al servicio y siempre limpia la sesión local.
// @Summary Logout
// @Description La sesión local se limpia aunque falle el logout remoto.
// @Tags session
// @Produce json
// @Success 303 {string} string "Redirect to /login"
// @Router /logout [post]
func LogoutHandler(api API, sess SessionClearer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := api.Logout(r.Context()); err != nil {
			log.Warn("remote logout failed; clearing local session", map[string]any{"error": err})
			sess.ClearAuth()
		}
		web.Redirect(w, r, web.LoginPath)
	}
}
