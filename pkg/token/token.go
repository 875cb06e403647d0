// Package token inspecciona el JWT que emite el backend de inventario.
//
// El secreto de firma vive únicamente en el backend, así que aquí no se valida
// la firma: solo se leen los claims para saber a quién pertenece la sesión y
// cuándo expira. La autoridad sobre la validez del token sigue siendo el
// backend (cada petición reenvía el token y un 401 invalida la sesión local).
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims de interés del token del backend.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// SessionInfo datos de sesión extraídos del token.
type SessionInfo struct {
	Subject   string // id del usuario según el backend
	Username  string
	ExpiresAt time.Time // cero si el token no declara expiración
}

// Inspect parsea el token sin verificar la firma y devuelve los datos de sesión.
// Retorna error si el token está malformado o ya expiró.
func Inspect(tokenString string) (*SessionInfo, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: parseo: %w", err)
	}

	info := &SessionInfo{
		Subject:  claims.Subject,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		if time.Now().After(info.ExpiresAt) {
			return nil, fmt.Errorf("token: expirado en %s", info.ExpiresAt.Format(time.RFC3339))
		}
	}
	return info, nil
}
