package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"medtap-client/internal/domain/users"
)

const MinPasswordLength = 8

var (
	ErrInvalidPayload = errors.New("invalid payload")

	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordTooShort = fmt.Errorf("Password must be at least %d characters", MinPasswordLength)
	ErrUserTypeRequired = errors.New("Please select a user type")
)

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterData struct {
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	UserType  users.UserType `json:"userType"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
}

// RegisterForm agrega la confirmación, que nunca se envía al servicio.
type RegisterForm struct {
	RegisterData
	ConfirmPassword string `json:"confirmPassword"`
}

// Validate corre antes de cualquier llamada remota, en este orden.
// El largo mínimo se cuenta en caracteres, no en bytes.
func (f RegisterForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if strings.TrimSpace(string(f.UserType)) == "" {
		return ErrUserTypeRequired
	}
	return nil
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  users.SessionUser `json:"user"`
}

func (r AuthResponse) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidPayload)
	}
	return r.User.Validate()
}

// MeResponse es la forma de GET /auth/me.
type MeResponse struct {
	User users.SessionUser `json:"user"`
}
