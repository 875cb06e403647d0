package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apphttp "github.com/jhoicas/Inventario-web/internal/interfaces/http"
)

const testCookieName = "inventory_session"

// buildSessionApp app mínima con el middleware de sesión y un handler que
// devuelve el username de los locals.
func buildSessionApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.SessionMiddleware(testCookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"username": apphttp.GetUsername(c)})
		},
	)
	return app
}

// sessionToken genera un JWT de sesión con la expiración dada.
func sessionToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := gojwt.MapClaims{"sub": "1", "username": "carla", "exp": exp.Unix()}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	require.NoError(t, err)
	return tok
}

func doSessionRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSessionMiddleware_SinCookie(t *testing.T) {
	resp := doSessionRequest(t, buildSessionApp(), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddleware_TokenVigentePasa(t *testing.T) {
	resp := doSessionRequest(t, buildSessionApp(), sessionToken(t, time.Now().Add(time.Hour)))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "carla", body["username"], "los claims quedan disponibles en locals")
}

func TestSessionMiddleware_TokenExpirado(t *testing.T) {
	resp := doSessionRequest(t, buildSessionApp(), sessionToken(t, time.Now().Add(-time.Minute)))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "una sesión vencida se rechaza sin llamar al backend")
}

func TestSessionMiddleware_TokenMalformado(t *testing.T) {
	resp := doSessionRequest(t, buildSessionApp(), "no-es-un-jwt")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
