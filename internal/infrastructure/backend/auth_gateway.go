package backend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// AuthGateway implementa repository.AuthGateway contra la API del backend.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway construye el gateway de autenticación.
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

var _ repository.AuthGateway = (*AuthGateway)(nil)

// userPayload forma de cable de un usuario.
type userPayload struct {
	ID        json.Number `json:"id"`
	Username  string      `json:"username"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (u userPayload) toEntity() *entity.User {
	return &entity.User{
		ID:        u.ID.String(),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login intercambia credenciales por token + usuario.
func (g *AuthGateway) Login(ctx context.Context, creds repository.Credentials) (string, *entity.User, error) {
	var data struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	body := credentialsPayload{Username: creds.Username, Password: creds.Password}
	if err := g.client.do(ctx, "POST", "/api/auth/login", body, &data); err != nil {
		return "", nil, err
	}
	return data.Token, data.User.toEntity(), nil
}

// Register crea la cuenta. El backend responde con el usuario creado.
func (g *AuthGateway) Register(ctx context.Context, creds repository.Credentials) (*entity.User, error) {
	var data userPayload
	body := credentialsPayload{Username: creds.Username, Password: creds.Password}
	if err := g.client.do(ctx, "POST", "/api/auth/register", body, &data); err != nil {
		return nil, err
	}
	return data.toEntity(), nil
}
