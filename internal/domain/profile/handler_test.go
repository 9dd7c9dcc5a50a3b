package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtap-client/internal/domain/metrics"
	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/session"
)

type fakeAPI struct {
	getProfile  func(ctx context.Context) (users.Profile, error)
	listMetrics func(ctx context.Context) ([]metrics.HealthMetric, error)
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (users.SessionUser, error) {
	return users.SessionUser{}, httpclient.ErrServer
}
func (f *fakeAPI) GetProfile(ctx context.Context) (users.Profile, error) { return f.getProfile(ctx) }
func (f *fakeAPI) UpdateProfile(ctx context.Context, patch users.ProfilePatch) (users.Profile, error) {
	return patch.Apply(users.Profile{}), nil
}
func (f *fakeAPI) ListHealthMetrics(ctx context.Context, _ metrics.Filter) ([]metrics.HealthMetric, error) {
	return f.listMetrics(ctx)
}
func (f *fakeAPI) RecordHealthMetric(ctx context.Context, in metrics.HealthMetricInput) (metrics.HealthMetric, error) {
	return metrics.HealthMetric{ID: "m1", MetricType: in.MetricType}, nil
}

func newStore() *session.Store {
	s := session.New(nil, nil)
	s.SetAuth("t1", users.SessionUser{
		User:    users.User{ID: "u1", Email: "ada@example.com", UserType: users.UserTypeIndividual},
		Profile: &users.Profile{FirstName: "Ada"},
	})
	return s
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func newRouter(api API, sess Session) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, api, sess)
	return r
}

func TestProfile_UnauthorizedAfterOtherFailureRedirects(t *testing.T) {
	store := newStore()
	api := &fakeAPI{
		getProfile: func(ctx context.Context) (users.Profile, error) {
			return users.Profile{}, &httpclient.HTTPError{StatusCode: http.StatusBadGateway}
		},
		listMetrics: func(ctx context.Context) ([]metrics.HealthMetric, error) {
			time.Sleep(30 * time.Millisecond)
			store.ExpireToken("t1")
			return nil, &httpclient.HTTPError{StatusCode: http.StatusUnauthorized}
		},
	}

	rec := serve(newRouter(api, store), http.MethodGet, Path, "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestProfile_UpdateWinsOverInFlightLoad(t *testing.T) {
	store := newStore()
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		getProfile: func(ctx context.Context) (users.Profile, error) {
			close(started)
			<-release
			return users.Profile{FirstName: "Old"}, nil
		},
		listMetrics: func(ctx context.Context) ([]metrics.HealthMetric, error) { return nil, nil },
	}
	h := newRouter(api, store)

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- serve(h, http.MethodGet, Path, "") }()
	<-started

	rec := serve(h, http.MethodPost, Path, `{"firstName":"New"}`)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	close(release)
	load := <-done
	require.Equal(t, http.StatusOK, load.Code)

	assert.Equal(t, "New", store.Snapshot().User.Profile.FirstName)
}

func TestOnboarding_RemoteFailureShowsCachedUser(t *testing.T) {
	rec := serve(newRouter(&fakeAPI{}, newStore()), http.MethodGet, OnboardingPath, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Could not refresh your account"`)
	assert.Contains(t, rec.Body.String(), `"firstName":"Ada"`)
}
