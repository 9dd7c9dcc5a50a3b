package medtapapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtap-client/internal/adapters/medtapapi/medtapapitest"
	"medtap-client/internal/adapters/storage/memory"
	"medtap-client/internal/domain/appointments"
	"medtap-client/internal/domain/auth"
	"medtap-client/internal/domain/documents"
	"medtap-client/internal/domain/metrics"
	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
	"medtap-client/internal/session"
)

type fixture struct {
	srv     *medtapapitest.Server
	store   *session.Store
	client  *Client
	expired atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{srv: medtapapitest.NewServer()}
	t.Cleanup(f.srv.Close)

	f.store = session.New(memory.NewSessionStore(), nil)
	c, err := NewClient(Config{
		BaseURL:          f.srv.APIURL(),
		Timeout:          2 * time.Second,
		OnSessionExpired: func() { f.expired.Add(1) },
	}, f.store, nil)
	require.NoError(t, err)
	f.client = c
	return f
}

func (f *fixture) login(t *testing.T) auth.AuthResponse {
	t.Helper()
	out, err := f.client.Login(context.Background(), auth.LoginCredentials{Email: medtapapitest.Email, Password: medtapapitest.Password})
	require.NoError(t, err)
	return out
}

func TestLogin_StoresTokenAndLaterCallsCarryBearer(t *testing.T) {
	f := newFixture(t)
	f.srv.NextToken("t1")

	out := f.login(t)

	assert.Equal(t, "t1", out.Token)
	assert.Equal(t, "t1", f.store.Token())
	require.NotNil(t, f.store.Snapshot().User)
	assert.Equal(t, "u1", f.store.Snapshot().User.ID)

	_, err := f.client.ListAppointments(context.Background())
	require.NoError(t, err)

	loginCalls := f.srv.CallsTo(http.MethodPost, "/auth/login")
	require.Len(t, loginCalls, 1)
	assert.Empty(t, loginCalls[0].Authorization, "login must not carry a credential")

	apptCalls := f.srv.CallsTo(http.MethodGet, "/appointments")
	require.Len(t, apptCalls, 1)
	assert.Equal(t, "Bearer t1", apptCalls[0].Authorization)
}

func TestLogin_BadCredentialsIsUnauthorizedWithoutExpiry(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.Login(context.Background(), auth.LoginCredentials{Email: medtapapitest.Email, Password: "wrong"})

	assert.ErrorIs(t, err, httpclient.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", httpclient.RemoteMessage(err))
	assert.Empty(t, f.store.Token())
	assert.Zero(t, f.expired.Load())
}

func TestRequestsWithoutTokenHaveNoCredential(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.ListDocuments(context.Background())

	assert.ErrorIs(t, err, httpclient.ErrUnauthorized)
	calls := f.srv.CallsTo(http.MethodGet, "/documents")
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Authorization)
	assert.Zero(t, f.expired.Load())
}

func TestUnauthorized_ClearsSessionExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.srv.Revoke()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.client.ListAppointments(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.True(t, errors.Is(err, httpclient.ErrUnauthorized), "got %v", err)
	}
	assert.Equal(t, int32(1), f.expired.Load())
	assert.Empty(t, f.store.Token())
	assert.Nil(t, f.store.Snapshot().User)
}

func TestUnauthorized_StaleTokenDoesNotClearNewSession(t *testing.T) {
	f := newFixture(t)
	f.srv.Force(http.MethodGet, "/pets", http.StatusUnauthorized, "Invalid token")

	f.store.SetAuth("old", users.SessionUser{User: users.User{ID: "u1", Email: "a@b.com"}})
	ctxOld := context.Background()
	tokOld := f.store.Token()

	// un login nuevo ocurre mientras el request viejo está en vuelo
	f.srv.NextToken("fresh")
	f.login(t)

	err := f.client.exec(httpclient.WithBearer(ctxOld, tokOld), tokOld, httpclient.Request{Method: http.MethodGet, Path: "/pets"}, nil)

	assert.ErrorIs(t, err, httpclient.ErrUnauthorized)
	assert.Equal(t, "fresh", f.store.Token())
	assert.Zero(t, f.expired.Load())
}

func TestRegister_WritesSession(t *testing.T) {
	f := newFixture(t)

	out, err := f.client.Register(context.Background(), auth.RegisterData{
		Email:     "new@example.com",
		Password:  "longenough",
		UserType:  users.UserTypeVeteran,
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	require.NoError(t, err)

	assert.Equal(t, out.Token, f.store.Token())
	snap := f.store.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, users.UserTypeVeteran, snap.User.UserType)
	require.NotNil(t, snap.User.Profile)
	assert.Equal(t, "Grace Hopper", snap.User.Profile.FullName())

	_, err = f.client.Register(context.Background(), auth.RegisterData{Email: "new@example.com", Password: "longenough", UserType: users.UserTypeVeteran})
	assert.ErrorIs(t, err, httpclient.ErrValidation)
	assert.Equal(t, "Email already registered", httpclient.RemoteMessage(err))
}

func TestLogout_ClearsSession(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	require.NoError(t, f.client.Logout(context.Background()))

	assert.Empty(t, f.store.Token())
	assert.Len(t, f.srv.CallsTo(http.MethodPost, "/auth/logout"), 1)
}

func TestListHealthMetrics_SendsOnlySetFilters(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	_, err := f.client.ListHealthMetrics(context.Background(), metrics.Filter{})
	require.NoError(t, err)
	_, err = f.client.ListHealthMetrics(context.Background(), metrics.Filter{MetricType: metrics.MetricWeight, StartDate: "2024-01-01"})
	require.NoError(t, err)

	calls := f.srv.CallsTo(http.MethodGet, "/health-metrics")
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].Query)
	assert.Equal(t, "metricType=weight&startDate=2024-01-01", calls[1].Query)
}

func TestListAppointments_RejectsUnknownEnum(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.srv.Appointments = []appointments.Appointment{{ID: "a1", AppointmentType: "teleport", Status: appointments.StatusScheduled}}

	_, err := f.client.ListAppointments(context.Background())

	assert.ErrorIs(t, err, httpclient.ErrDecode)
	assert.ErrorIs(t, err, appointments.ErrInvalidPayload)
}

func TestAppointmentLifecycle(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	typ := appointments.TypeTelemedicine
	name := "Dr. Who"
	date := "2024-05-01T10:00:00Z"

	a, err := f.client.CreateAppointment(context.Background(), appointments.AppointmentInput{
		AppointmentType: &typ,
		ProviderName:    &name,
		AppointmentDate: &date,
	})
	require.NoError(t, err)
	require.NoError(t, f.client.CancelAppointment(context.Background(), a.ID))

	list, err := f.client.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, appointments.StatusCancelled, list[0].Status)

	assert.ErrorIs(t, f.client.CancelAppointment(context.Background(), "missing"), httpclient.ErrNotFound)
	assert.ErrorIs(t, f.client.CancelAppointment(context.Background(), "../x"), httpclient.ErrValidation)
}

func TestUploadAndSignDocument(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	doc, err := f.client.UploadDocument(context.Background(), documents.UploadInput{
		DocumentType: documents.TypeLabReport,
		Title:        "Lipid panel",
		FileName:     "labs.pdf",
		ContentType:  "application/pdf",
		File:         strings.NewReader("%PDF-1.7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "labs.pdf", doc.FileName)
	assert.Equal(t, []string{"%PDF-1.7"}, f.srv.Uploads)

	signed, err := f.client.SignDocument(context.Background(), doc.ID, "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.True(t, signed.Signed())
}

func TestUpdateProfile_SendsOnlyPresentFields(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	first := "Ada"

	p, err := f.client.UpdateProfile(context.Background(), users.ProfilePatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)

	got, err := f.client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(Config{}, session.New(nil, nil), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{BaseURL: "http://localhost"}, nil, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestItemPath_RejectsTraversalAndEscapes(t *testing.T) {
	for _, id := range []string{"", " ", ".", "..", "../x", "a/b", "a?b", "a#b"} {
		_, err := itemPath("/pets", id)
		assert.ErrorIs(t, err, httpclient.ErrValidation, "id %q", id)
	}

	got, err := itemPath("/pets", "a%2e b")
	require.NoError(t, err)
	assert.Equal(t, "/pets/a%252e%20b", got)

	got, err = itemPath("/pets", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "/pets/p-1", got)
}

func TestDeletePet_EscapedIDReachesServiceDecoded(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	err := f.client.DeletePet(context.Background(), "100%")
	assert.ErrorIs(t, err, httpclient.ErrNotFound)
	calls := f.srv.CallsTo(http.MethodDelete, "/pets/100%")
	assert.Len(t, calls, 1)
}
