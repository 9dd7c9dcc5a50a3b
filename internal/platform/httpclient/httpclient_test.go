package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestDo_JSONRoundTripWithBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID, gotCT, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get(RequestIDHeader)
		gotCT = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
	}))
	defer ts.Close()

	tr := &RequestIDTransport{Base: &BearerTransport{Token: func() string { return "t1" }}}
	c, err := NewWithBaseURL(ts.URL+"/api/v1", time.Second, tr)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out struct {
		Echo string `json:"echo"`
	}
	err = c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "pets",
		Query:  url.Values{"metricType": []string{"weight"}},
		JSON:   map[string]string{"name": "Milo"},
	}, &out)
	if err != nil {
		t.Fatalf("do: %v", err)
	}

	if out.Echo != "Milo" {
		t.Fatalf("expected echo Milo, got %q", out.Echo)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatalf("expected request id header")
	}
	if gotCT != "application/json" {
		t.Fatalf("expected json content type, got %q", gotCT)
	}
	if gotQuery != "metricType=weight" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
}

func TestBearerTransport_NoTokenOrAnonymous(t *testing.T) {
	var headers []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
	}))
	defer ts.Close()

	token := ""
	c := NewWithTransport(time.Second, &BearerTransport{Token: func() string { return token }})
	c.BaseURL = ts.URL

	if err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/auth/me"}, nil); err != nil {
		t.Fatalf("do: %v", err)
	}

	token = "t2"
	if err := c.Do(Anonymous(context.Background()), Request{Method: http.MethodPost, Path: "/auth/login", JSON: map[string]string{}}, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if err := c.Do(WithBearer(context.Background(), "pinned"), Request{Method: http.MethodGet, Path: "/auth/me"}, nil); err != nil {
		t.Fatalf("do: %v", err)
	}

	want := []string{"", "", "Bearer pinned"}
	for i := range want {
		if headers[i] != want[i] {
			t.Fatalf("request %d: expected %q, got %q", i, want[i], headers[i])
		}
	}
}

func TestDo_ClassifiesErrors(t *testing.T) {
	status := http.StatusUnauthorized
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"Invalid token"}`))
	}))
	defer ts.Close()

	c := NewWithTransport(time.Second, nil)
	c.BaseURL = ts.URL

	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnprocessableEntity, ErrValidation},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tc := range cases {
		status = tc.status
		err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/appointments"}, nil)
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
		if RemoteMessage(err) != "Invalid token" {
			t.Fatalf("status %d: expected remote message, got %q", tc.status, RemoteMessage(err))
		}
	}
}

func TestDo_TransportAndDecodeErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	c := NewWithTransport(time.Second, nil)
	c.BaseURL = ts.URL

	var out map[string]any
	if err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/pets"}, &out); !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}

	ts.Close()
	if err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/pets"}, &out); !errors.Is(err, ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestDo_Multipart(t *testing.T) {
	var title, fileName, content string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			http.Error(w, "expected multipart", http.StatusBadRequest)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		title = r.FormValue("title")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		fileName, content = hdr.Filename, string(b)
	}))
	defer ts.Close()

	c := NewWithTransport(time.Second, nil)
	c.BaseURL = ts.URL

	err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/documents/upload",
		Multipart: &Multipart{
			Fields:   map[string]string{"title": "Lab panel"},
			FileName: "labs.pdf",
			File:     strings.NewReader("%PDF-1.7"),
		},
	}, nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if title != "Lab panel" || fileName != "labs.pdf" || content != "%PDF-1.7" {
		t.Fatalf("unexpected upload: title=%q file=%q content=%q", title, fileName, content)
	}
}
