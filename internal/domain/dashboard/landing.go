package dashboard

import (
	"net/http"

	"medtap-client/internal/session"
	"medtap-client/internal/web"
)

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var features = []Feature{
	{"Medical Records", "Access your complete medical history with ease"},
	{"Pet Care", "Manage health records for your furry family members"},
	{"Veteran Services", "Dedicated support for our veterans"},
	{"HIPAA Compliant", "Your data is secure and protected"},
	{"Family Management", "Manage healthcare for your entire family"},
	{"Document Management", "Upload, sign, and manage medical documents"},
}

type landingView struct {
	Page          string            `json:"page"`
	Authenticated bool              `json:"authenticated"`
	Features      []Feature         `json:"features"`
	Links         map[string]string `json:"links"`
}

// LandingHandler es pública; solo informa si ya hay sesión.
// @Summary Landing
// @Tags public
// @Produce json
// @Success 200 {object} map[string]interface{} "JSON view model"
// @Router / [get]
func LandingHandler(sess session.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, landingView{
			Page:          "landing",
			Authenticated: sess.Token() != "",
			Features:      features,
			Links: map[string]string{
				"login":     web.LoginPath,
				"register":  "/register",
				"dashboard": web.DashboardPath,
			},
		})
	}
}
