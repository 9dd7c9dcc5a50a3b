package documents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"medtap-client/internal/platform/httpclient"
)

type signCall struct{ id, signature string }

type fakeAPI struct {
	signs   []signCall
	signErr error
}

func (f *fakeAPI) ListDocuments(ctx context.Context) ([]Document, error) { return nil, nil }
func (f *fakeAPI) GetDocument(ctx context.Context, id string) (Document, error) {
	return Document{ID: id}, nil
}
func (f *fakeAPI) UploadDocument(ctx context.Context, in UploadInput) (Document, error) {
	return Document{ID: "d9"}, nil
}
func (f *fakeAPI) SignDocument(ctx context.Context, id, signatureData string) (Document, error) {
	f.signs = append(f.signs, signCall{id, signatureData})
	return Document{ID: id}, f.signErr
}
func (f *fakeAPI) DeleteDocument(ctx context.Context, id string) error { return nil }

func serve(api API, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, api)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestSign_RequiresSignatureLocally(t *testing.T) {
	api := &fakeAPI{}
	rec := serve(api, http.MethodPost, Path+"/d1/sign", `{"signatureData":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signature is required")
	assert.Empty(t, api.signs)
}

func TestSign_ForwardsAndRedirectsToDetail(t *testing.T) {
	api := &fakeAPI{}
	rec := serve(api, http.MethodPost, Path+"/d1/sign", `{"signatureData":"data:image/png;base64,AAAA"}`)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, Path+"/d1", rec.Header().Get("Location"))
	assert.Equal(t, []signCall{{"d1", "data:image/png;base64,AAAA"}}, api.signs)
}

func TestSign_UnauthorizedGoesToLogin(t *testing.T) {
	api := &fakeAPI{signErr: &httpclient.HTTPError{StatusCode: http.StatusUnauthorized}}
	rec := serve(api, http.MethodPost, Path+"/d1/sign", `{"signatureData":"x"}`)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
