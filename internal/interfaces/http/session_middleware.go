package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/token"
)

// Locals keys de sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// SessionMiddleware exige una cookie de sesión con un token no expirado y
// propaga el token por el contexto de la petición para que el gateway firme
// las llamadas al backend. La validez real del token la decide el backend:
// aquí solo se descartan tokens ausentes, malformados o ya vencidos.
func SessionMiddleware(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Cookies(cookieName)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "inicia sesión para continuar"})
		}
		info, err := token.Inspect(tok)
		if err != nil {
			c.ClearCookie(cookieName)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicia sesión de nuevo"})
		}
		c.Locals(LocalUserID, info.Subject)
		c.Locals(LocalUsername, info.Username)
		c.SetUserContext(repository.ContextWithToken(c.UserContext(), tok))
		return c.Next()
	}
}

// GetUsername devuelve el username de la sesión (después del middleware).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
