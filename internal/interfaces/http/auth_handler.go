package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/auth"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/pkg/config"
)

// AuthHandler maneja login, registro y logout de la sesión.
// El token del backend nunca llega al JavaScript de la página: viaja en una
// cookie HTTP-only que este servidor reenvía en cada llamada protegida.
type AuthHandler struct {
	uc      *auth.SessionUseCase
	session config.SessionConfig
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.SessionUseCase, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, session: session}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Cookie(h.sessionCookie(session.Token, session.ExpiresAt))
	return c.JSON(dto.SessionResponse{
		User: dto.UserResponse{
			ID:        session.User.ID,
			Username:  session.User.Username,
			CreatedAt: session.User.CreatedAt,
		},
		ExpiresAt: session.ExpiresAt,
	})
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de registro"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Teardown de la sesión: basta con expirar la cookie; el token del
	// backend caduca por su cuenta.
	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}
