package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// Credentials credenciales de login/registro que se reenvían al backend.
// Esta aplicación nunca las persiste ni las hashea: eso es del backend.
type Credentials struct {
	Username string
	Password string
}

// AuthGateway puerto hacia el colaborador backend para autenticación.
type AuthGateway interface {
	// Login intercambia credenciales por un token de sesión y el usuario.
	Login(ctx context.Context, creds Credentials) (token string, user *entity.User, err error)
	// Register crea la cuenta; el login posterior es un paso separado.
	Register(ctx context.Context, creds Credentials) (*entity.User, error)
}
