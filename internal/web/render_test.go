package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medtap-client/internal/platform/httpclient"
)

func TestFail_UnauthorizedRedirectsToLogin(t *testing.T) {
	err := fmt.Errorf("list appointments: %w", &httpclient.HTTPError{StatusCode: http.StatusUnauthorized})

	rr := httptest.NewRecorder()
	Fail(rr, httptest.NewRequest(http.MethodGet, "/appointments", nil), "appointments", err, "Failed to load appointments")

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected %s, got %q", LoginPath, loc)
	}
}

func TestFail_InlineMessage(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"remote message", &httpclient.HTTPError{StatusCode: 422, Message: "Title is required"}, http.StatusBadRequest, "Title is required"},
		{"server fallback", &httpclient.HTTPError{StatusCode: 500}, http.StatusBadGateway, "Something went wrong"},
		{"transport fallback", fmt.Errorf("%w: dial tcp", httpclient.ErrTransport), http.StatusBadGateway, "Something went wrong"},
		{"not found", &httpclient.HTTPError{StatusCode: 404, Message: "Pet not found"}, http.StatusNotFound, "Pet not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Fail(rr, httptest.NewRequest(http.MethodPost, "/pets", nil), "pets", tc.err, "Something went wrong")

			if rr.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rr.Code)
			}
			var v ErrorView
			if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if v.Error != tc.msg || v.Page != "pets" {
				t.Fatalf("unexpected view %+v", v)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.com"}`))
	if err := DecodeJSON(r, &v); err != nil || v.Email != "a@b.com" {
		t.Fatalf("unexpected decode: %v %+v", err, v)
	}

	r = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"unknown":1}`))
	if err := DecodeJSON(r, &v); err == nil {
		t.Fatalf("expected error for unknown field")
	}

	r = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(""))
	if err := DecodeJSON(r, &v); err != nil {
		t.Fatalf("expected empty body to be accepted, got %v", err)
	}
}
