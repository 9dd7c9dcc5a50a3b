package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"medtap-client/internal/adapters/medtapapi"
	"medtap-client/internal/adapters/medtapapi/medtapapitest"
	"medtap-client/internal/adapters/storage/memory"
	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/router"
	"medtap-client/internal/session"
)

type app struct {
	ts      *httptest.Server
	remote  *medtapapitest.Server
	store   *session.Store
	expired *atomic.Int32
}

func newApp(t *testing.T) *app {
	t.Helper()

	remote := medtapapitest.NewServer()
	t.Cleanup(remote.Close)

	store := session.New(memory.NewSessionStore(), nil)
	expired := &atomic.Int32{}
	api, err := medtapapi.NewClient(medtapapi.Config{
		BaseURL:          remote.APIURL(),
		Timeout:          2 * time.Second,
		OnSessionExpired: func() { expired.Add(1) },
	}, store, nil)
	if err != nil {
		t.Fatalf("new api client: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Session: store, API: api}))
	t.Cleanup(ts.Close)

	return &app{ts: ts, remote: remote, store: store, expired: expired}
}

func (a *app) login(t *testing.T) {
	t.Helper()
	st, _, loc := doReq(t, a.ts.URL, "POST", "/login", map[string]any{
		"email":    medtapapitest.Email,
		"password": medtapapitest.Password,
	})
	if st != http.StatusSeeOther || loc != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard after login, got %d %q", st, loc)
	}
}

func TestHTTP_EndToEnd_LoginDashboardAndForcedLogout(t *testing.T) {
	a := newApp(t)

	for i := 0; i < 4; i++ {
		a.remote.Appointments = append(a.remote.Appointments, appointments.Appointment{
			ID:              fmt.Sprintf("a%d", i),
			AppointmentType: appointments.TypeInPerson,
			Status:          appointments.StatusScheduled,
			ProviderName:    "Dr. House",
		})
	}
	for i := 0; i < 6; i++ {
		a.remote.Records = append(a.remote.Records, records.MedicalRecord{
			ID:         fmt.Sprintf("r%d", i),
			RecordType: records.RecordTypeVisit,
			Title:      "Checkup",
		})
	}

	// 1) Sin sesión el guard redirige
	{
		st, _, loc := doReq(t, a.ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusSeeOther || loc != "/login" {
			t.Fatalf("expected 303 to /login without session, got %d %q", st, loc)
		}
	}

	// 2) Credenciales malas => error inline, sin navegación
	{
		st, body, _ := doReq(t, a.ts.URL, "POST", "/login", map[string]any{
			"email":    medtapapitest.Email,
			"password": "nope",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 inline error, got %d body=%s", st, body)
		}
		if msg := errorOf(t, body); msg != "Invalid credentials" {
			t.Fatalf("expected remote message, got %q", msg)
		}
	}

	// 3) Login correcto
	a.remote.NextToken("t1")
	a.login(t)
	if a.store.Token() != "t1" {
		t.Fatalf("expected session token t1, got %q", a.store.Token())
	}

	// 4) Dashboard: conteos y recortes
	{
		st, body, _ := doReq(t, a.ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, body)
		}
		var v struct {
			Greeting string `json:"greeting"`
			Stats    struct {
				Appointments int `json:"appointments"`
				Records      int `json:"records"`
			} `json:"stats"`
			Upcoming []json.RawMessage `json:"upcomingAppointments"`
			Recent   []json.RawMessage `json:"recentRecords"`
		}
		if err := json.Unmarshal(body, &v); err != nil {
			t.Fatalf("decode dashboard: %v", err)
		}
		if v.Stats.Appointments != 4 || v.Stats.Records != 6 {
			t.Fatalf("unexpected stats %+v", v.Stats)
		}
		if len(v.Upcoming) != 3 || len(v.Recent) != 5 {
			t.Fatalf("expected 3 upcoming and 5 recent, got %d and %d", len(v.Upcoming), len(v.Recent))
		}
		if v.Greeting != "Welcome back, User!" {
			t.Fatalf("unexpected greeting %q", v.Greeting)
		}
	}

	for _, c := range a.remote.CallsTo("GET", "/appointments") {
		if c.Authorization != "Bearer t1" {
			t.Fatalf("expected bearer t1 on appointments, got %q", c.Authorization)
		}
	}

	// 5) El servicio invalida el token: el siguiente GET /appointments fuerza logout
	a.remote.Revoke()
	{
		st, _, loc := doReq(t, a.ts.URL, "GET", "/appointments", nil)
		if st != http.StatusSeeOther || loc != "/login" {
			t.Fatalf("expected 303 to /login after 401, got %d %q", st, loc)
		}
	}
	snap := a.store.Snapshot()
	if snap.Token != "" || snap.User != nil {
		t.Fatalf("expected cleared session after 401, got %+v", snap)
	}
	if a.expired.Load() != 1 {
		t.Fatalf("expected session expiry to fire once, got %d", a.expired.Load())
	}

	// 6) Y el guard ya no deja pasar
	{
		st, _, loc := doReq(t, a.ts.URL, "GET", "/dashboard", nil)
		if st != http.StatusSeeOther || loc != "/login" {
			t.Fatalf("expected 303 to /login after expiry, got %d %q", st, loc)
		}
	}
}

func TestHTTP_ConcurrentUnauthorizedPagesExpireSessionOnce(t *testing.T) {
	a := newApp(t)
	a.login(t)
	a.remote.Revoke()

	paths := []string{"/dashboard", "/appointments", "/medical-records", "/documents", "/pets", "/body-scan", "/profile", "/dashboard"}
	type result struct {
		path   string
		status int
		loc    string
	}
	results := make(chan result, len(paths))
	var wg sync.WaitGroup
	for _, p := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			req, _ := http.NewRequest("GET", a.ts.URL+p, nil)
			res, err := noRedirect().Do(req)
			if err != nil {
				results <- result{path: p}
				return
			}
			res.Body.Close()
			results <- result{p, res.StatusCode, res.Header.Get("Location")}
		}(p)
	}
	wg.Wait()
	close(results)

	for r := range results {
		if r.status != http.StatusSeeOther || r.loc != "/login" {
			t.Fatalf("expected 303 to /login for %s, got %d %q", r.path, r.status, r.loc)
		}
	}
	if a.expired.Load() != 1 {
		t.Fatalf("expected session expiry exactly once, got %d", a.expired.Load())
	}
	if a.store.Token() != "" {
		t.Fatalf("expected cleared session")
	}
}

func TestHTTP_Register_ValidatesLocallyThenRedirects(t *testing.T) {
	a := newApp(t)

	valid := map[string]any{
		"email":           "grace@example.com",
		"password":        "longenough",
		"confirmPassword": "longenough",
		"userType":        "veteran",
		"firstName":       "Grace",
		"lastName":        "Hopper",
	}
	with := func(k string, v any) map[string]any {
		out := map[string]any{}
		for kk, vv := range valid {
			out[kk] = vv
		}
		out[k] = v
		return out
	}

	cases := []struct {
		body map[string]any
		msg  string
	}{
		{with("confirmPassword", "different1"), "Passwords do not match"},
		{with("password", "short"), "Passwords do not match"},
		{with("userType", ""), "Please select a user type"},
	}
	short := with("password", "short")
	short["confirmPassword"] = "short"
	cases = append(cases, struct {
		body map[string]any
		msg  string
	}{short, "Password must be at least 8 characters"})

	for _, tc := range cases {
		st, body, _ := doReq(t, a.ts.URL, "POST", "/register", tc.body)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, body)
		}
		if msg := errorOf(t, body); msg != tc.msg {
			t.Fatalf("expected %q, got %q", tc.msg, msg)
		}
	}
	if n := len(a.remote.Calls()); n != 0 {
		t.Fatalf("expected no remote calls for invalid registrations, got %d", n)
	}

	st, _, loc := doReq(t, a.ts.URL, "POST", "/register", valid)
	if st != http.StatusSeeOther || loc != "/onboarding" {
		t.Fatalf("expected 303 to /onboarding, got %d %q", st, loc)
	}

	st, body, _ := doReq(t, a.ts.URL, "GET", "/onboarding", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 onboarding, got %d body=%s", st, body)
	}
	if !bytes.Contains(body, []byte("Link your VA benefits")) {
		t.Fatalf("expected veteran onboarding step, body=%s", body)
	}
}

func TestHTTP_Logout_ClearsLocalSessionEvenIfRemoteFails(t *testing.T) {
	a := newApp(t)
	a.login(t)
	a.remote.Force("POST", "/auth/logout", http.StatusBadGateway, "upstream down")

	st, _, loc := doReq(t, a.ts.URL, "POST", "/logout", nil)
	if st != http.StatusSeeOther || loc != "/login" {
		t.Fatalf("expected 303 to /login, got %d %q", st, loc)
	}
	if a.store.Token() != "" {
		t.Fatalf("expected local session cleared")
	}
}

func TestHTTP_Profile_UpdateMergesIntoSession(t *testing.T) {
	a := newApp(t)
	a.login(t)

	st, body, loc := doReq(t, a.ts.URL, "POST", "/profile", map[string]any{"firstName": "Ada", "weight": 61.5})
	if st != http.StatusSeeOther || loc != "/profile" {
		t.Fatalf("expected 303 to /profile, got %d %q body=%s", st, loc, body)
	}
	p := a.store.Snapshot().User.Profile
	if p == nil || p.FirstName != "Ada" || p.Weight == nil || *p.Weight != 61.5 {
		t.Fatalf("expected merged profile in session, got %+v", p)
	}

	st, body, _ = doReq(t, a.ts.URL, "GET", "/profile", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 profile, got %d body=%s", st, body)
	}
	var v struct {
		Profile        struct{ FirstName string } `json:"profile"`
		TokenExpiresAt *time.Time                 `json:"tokenExpiresAt"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if v.Profile.FirstName != "Ada" || v.TokenExpiresAt == nil {
		t.Fatalf("unexpected profile view %s", body)
	}

	st, _, loc = doReq(t, a.ts.URL, "POST", "/profile/metrics", map[string]any{"metricType": "weight", "value": 61.5, "unit": "kg"})
	if st != http.StatusSeeOther || loc != "/profile" {
		t.Fatalf("expected 303 after recording metric, got %d %q", st, loc)
	}
	if len(a.remote.HealthMetrics) != 1 {
		t.Fatalf("expected one metric recorded remotely")
	}
}

func TestHTTP_Documents_UploadIsForwarded(t *testing.T) {
	a := newApp(t)
	a.login(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("documentType", "lab_report")
	_ = mw.WriteField("title", "Lipid panel")
	fw, _ := mw.CreateFormFile("file", "labs.pdf")
	_, _ = fw.Write([]byte("%PDF-1.7"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", a.ts.URL+"/documents/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := noRedirect().Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/documents" {
		t.Fatalf("expected 303 to /documents, got %d", res.StatusCode)
	}
	if len(a.remote.Uploads) != 1 || a.remote.Uploads[0] != "%PDF-1.7" {
		t.Fatalf("expected upload forwarded, got %v", a.remote.Uploads)
	}

	// sin archivo no se llama al servicio
	before := len(a.remote.Calls())
	st, body, _ := doReq(t, a.ts.URL, "POST", "/documents/upload", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without multipart, got %d body=%s", st, body)
	}
	if len(a.remote.Calls()) != before {
		t.Fatalf("expected no remote call")
	}
}

func TestHTTP_PublicRoutes(t *testing.T) {
	a := newApp(t)

	for _, path := range []string{"/", "/health", "/login", "/register", "/swagger/doc.json"} {
		st, body, _ := doReq(t, a.ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d body=%s", path, st, body)
		}
	}

	st, _, _ := doReq(t, a.ts.URL, "GET", "/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var v struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode error view: %v body=%s", err, body)
	}
	return v.Error
}

func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte, string) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := noRedirect().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res.Header.Get("Location")
}

func TestHTTP_SwaggerDocumentsEveryRoute(t *testing.T) {
	a := newApp(t)

	st, body, _ := doReq(t, a.ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}

	routes, ok := router.NewRouter(router.Options{Session: a.store}).(chi.Routes)
	if !ok {
		t.Fatalf("router is not walkable")
	}
	walked := 0
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		walked++
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("route %s %s missing from swagger doc", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	documented := 0
	for _, ops := range doc.Paths {
		documented += len(ops)
	}
	if documented != walked {
		t.Fatalf("doc lists %d operations, router serves %d", documented, walked)
	}
}
