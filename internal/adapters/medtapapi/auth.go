package medtapapi

import (
	"context"
	"net/http"

	"medtap-client/internal/domain/auth"
	"medtap-client/internal/domain/users"
	"medtap-client/internal/platform/httpclient"
)

// Login autentica y deja la sesión escrita (única escritura del token).
func (c *Client) Login(ctx context.Context, creds auth.LoginCredentials) (auth.AuthResponse, error) {
	var out auth.AuthResponse
	if err := c.doAnonymous(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		JSON:   creds,
	}, &out); err != nil {
		return auth.AuthResponse{}, err
	}
	if err := checkOne(out); err != nil {
		return auth.AuthResponse{}, err
	}
	c.session.SetAuth(out.Token, out.User)
	return out, nil
}

// Register crea la cuenta y deja la sesión escrita.
func (c *Client) Register(ctx context.Context, data auth.RegisterData) (auth.AuthResponse, error) {
	var out auth.AuthResponse
	if err := c.doAnonymous(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		JSON:   data,
	}, &out); err != nil {
		return auth.AuthResponse{}, err
	}
	if err := checkOne(out); err != nil {
		return auth.AuthResponse{}, err
	}
	c.session.SetAuth(out.Token, out.User)
	return out, nil
}

// CurrentUser trae GET /auth/me. No toca la sesión; el llamador decide si refrescar.
func (c *Client) CurrentUser(ctx context.Context) (users.SessionUser, error) {
	var out auth.MeResponse
	if err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/auth/me"}, &out); err != nil {
		return users.SessionUser{}, err
	}
	if err := checkOne(out.User); err != nil {
		return users.SessionUser{}, err
	}
	return out.User, nil
}

// Logout avisa al servicio y limpia la sesión local si respondió bien.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, httpclient.Request{Method: http.MethodPost, Path: "/auth/logout"}, nil); err != nil {
		return err
	}
	c.session.ClearAuth()
	return nil
}

func (c *Client) GetProfile(ctx context.Context) (users.Profile, error) {
	var out users.Profile
	err := c.do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/profile"}, &out)
	return out, err
}

// UpdateProfile manda solo los campos presentes del patch (PUT parcial).
func (c *Client) UpdateProfile(ctx context.Context, patch users.ProfilePatch) (users.Profile, error) {
	var out users.Profile
	err := c.do(ctx, httpclient.Request{Method: http.MethodPut, Path: "/profile", JSON: patch}, &out)
	return out, err
}
