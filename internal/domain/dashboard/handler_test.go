package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/records"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/platform/logger"
	"medtap-client/internal/session"
)

// fakeSession imita el store: un 401 remoto lo vacía.
type fakeSession struct {
	mu    sync.Mutex
	token string
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) Snapshot() session.State {
	return session.State{Token: s.Token()}
}

func (s *fakeSession) expire() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

type fakeAPI struct {
	appts func() ([]appointments.Appointment, error)
	recs  func() ([]records.MedicalRecord, error)
}

func (f *fakeAPI) ListAppointments(ctx context.Context) ([]appointments.Appointment, error) {
	return f.appts()
}

func (f *fakeAPI) ListMedicalRecords(ctx context.Context) ([]records.MedicalRecord, error) {
	return f.recs()
}

func serve(api API, sess session.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	Handler(api, sess, logger.Discard()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return rec
}

func TestDashboard_PartialFailureStillRenders(t *testing.T) {
	api := &fakeAPI{
		appts: func() ([]appointments.Appointment, error) {
			return []appointments.Appointment{{ID: "a1"}}, nil
		},
		recs: func() ([]records.MedicalRecord, error) {
			return nil, &httpclient.HTTPError{StatusCode: http.StatusInternalServerError}
		},
	}
	rec := serve(api, &fakeSession{token: "t1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var v View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Error != "Failed to load dashboard data" {
		t.Fatalf("expected generic error, got %q", v.Error)
	}
	if v.Stats.Appointments != 0 || len(v.Upcoming) != 0 {
		t.Fatalf("expected no data on failure, got %+v", v)
	}
}

func TestDashboard_LaterUnauthorizedStillRedirects(t *testing.T) {
	sess := &fakeSession{token: "t1"}
	api := &fakeAPI{
		appts: func() ([]appointments.Appointment, error) {
			return nil, &httpclient.HTTPError{StatusCode: http.StatusInternalServerError}
		},
		recs: func() ([]records.MedicalRecord, error) {
			// llega después del 500: errgroup ya tiene su primer error
			time.Sleep(30 * time.Millisecond)
			sess.expire()
			return nil, &httpclient.HTTPError{StatusCode: http.StatusUnauthorized}
		},
	}
	rec := serve(api, sess)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected 303 to /login, got %d %q body=%s", rec.Code, rec.Header().Get("Location"), rec.Body.String())
	}
}

func TestDashboard_CountsAndSlices(t *testing.T) {
	appts := make([]appointments.Appointment, 5)
	recs := make([]records.MedicalRecord, 7)
	api := &fakeAPI{
		appts: func() ([]appointments.Appointment, error) { return appts, nil },
		recs:  func() ([]records.MedicalRecord, error) { return recs, nil },
	}
	rec := serve(api, &fakeSession{token: "t1"})

	var v View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Stats.Appointments != 5 || v.Stats.Records != 7 || len(v.Upcoming) != 3 || len(v.Recent) != 5 {
		t.Fatalf("unexpected dashboard %+v", v)
	}
}
