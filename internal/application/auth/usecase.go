// Package auth gestiona el ciclo de vida de la sesión del lado de la UI:
// se inicializa en el login, se derriba en el logout y se inyecta por
// contexto en cada llamada al backend. Las credenciales nunca se validan ni
// persisten aquí; el backend es la única autoridad.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/token"
)

// Session sesión activa: el token emitido por el backend más el usuario.
type Session struct {
	Token     string
	User      entity.User
	ExpiresAt time.Time // cero si el token no declara expiración
}

// SessionUseCase casos de uso de sesión: registro, login y logout.
type SessionUseCase struct {
	gateway repository.AuthGateway
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(gateway repository.AuthGateway) *SessionUseCase {
	return &SessionUseCase{gateway: gateway}
}

// Login intercambia credenciales por una sesión. La expiración se lee de los
// claims del token; un token opaco produce una sesión sin expiración local
// (el backend la rechazará con 401 cuando caduque).
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, domain.NewFieldError("username", "el usuario es requerido")
	}
	if in.Password == "" {
		return nil, domain.NewFieldError("password", "la contraseña es requerida")
	}
	tok, user, err := uc.gateway.Login(ctx, repository.Credentials{
		Username: strings.TrimSpace(in.Username),
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	session := &Session{Token: tok, User: *user}
	if info, err := token.Inspect(tok); err == nil {
		session.ExpiresAt = info.ExpiresAt
	}
	return session, nil
}

// Register crea la cuenta en el backend. Reglas locales: username de 3 a 50
// caracteres, contraseña mínimo 6, confirmación idéntica.
func (uc *SessionUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 || len(username) > 50 {
		return nil, domain.NewFieldError("username", "el usuario debe tener entre 3 y 50 caracteres")
	}
	if len(in.Password) < 6 {
		return nil, domain.NewFieldError("password", "la contraseña debe tener al menos 6 caracteres")
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewFieldError("confirmPassword", "las contraseñas no coinciden")
	}
	user, err := uc.gateway.Register(ctx, repository.Credentials{Username: username, Password: in.Password})
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt}, nil
}
