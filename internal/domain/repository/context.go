package repository

import "context"

type tokenKey struct{}

// ContextWithToken inyecta el token de sesión en el contexto de la petición.
// La sesión viaja explícitamente por contexto en lugar de vivir como estado
// ambiente: el gateway la lee al firmar cada llamada protegida al backend.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext devuelve el token de sesión, o vacío si no hay sesión.
func TokenFromContext(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}
