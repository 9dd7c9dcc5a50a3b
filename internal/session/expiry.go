package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry lee el claim exp sin verificar la firma. Solo para mostrar; nunca decide acceso.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
