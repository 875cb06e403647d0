package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/Inventario-web/pkg/config"
	"github.com/jhoicas/Inventario-web/pkg/logger"
)

func newGateways(t *testing.T, handler http.Handler) (*backend.ProductGateway, *backend.AuthGateway) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	client := backend.NewClient(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 2}, log)
	return backend.NewProductGateway(client), backend.NewAuthGateway(client)
}

func writeEnvelope(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "ok",
		"data":    data,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// FetchProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchProducts_DecodificaYPreservaElOrden(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"),
			"el token del contexto firma la llamada")
		writeEnvelope(w, map[string]any{
			"products": []map[string]any{
				{"id": 2, "name": "Mouse", "type": "electrónica", "sku": "MOU-2", "quantity": 5, "price": 19.99, "imageUrl": "http://img/2"},
				{"id": 1, "name": "Teclado", "type": "electrónica", "sku": "TEC-1", "quantity": 0, "price": 45.50},
			},
			"page":  1,
			"limit": 100,
		})
	}))

	ctx := repository.ContextWithToken(context.Background(), "tok-123")
	products, err := gw.FetchProducts(ctx, 100)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID, "se preserva el orden del backend")
	assert.Equal(t, "Mouse", products[0].Name)
	assert.Equal(t, "http://img/2", products[0].ImageURL)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("19.99")),
		"el precio JSON se decodifica como decimal exacto, se obtuvo %s", products[0].Price)
	assert.Equal(t, 0, products[1].Quantity)
}

func TestFetchProducts_FalloDeTransporteEsFetchFailure(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal server error"}`))
	}))

	_, err := gw.FetchProducts(context.Background(), 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchFailure))
}

func TestFetchProducts_401EsUnauthorized(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))

	_, err := gw.FetchProducts(context.Background(), 100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized),
		"un 401 se distingue de un fallo de red: invalida la sesión, no el snapshot")
}

// ──────────────────────────────────────────────────────────────────────────────
// Create y UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EnviaElJuegoCompletoDeCampos(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/products", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Teclado", body["name"])
		assert.Equal(t, "TEC-1", body["sku"])
		assert.EqualValues(t, 3, body["quantity"])
		assert.EqualValues(t, 45.5, body["price"])
		w.WriteHeader(http.StatusCreated)
		writeEnvelope(w, map[string]any{"id": 7, "name": "Teclado", "type": "electrónica", "sku": "TEC-1", "quantity": 3, "price": 45.5})
	}))

	created, err := gw.Create(context.Background(), repository.CreateProductInput{
		Name: "Teclado", Type: "electrónica", SKU: "TEC-1", Quantity: 3, Price: "45.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)
}

func TestCreate_ConflictoConservaElMensajeDelBackend(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Product with this SKU already exists"}`))
	}))

	_, err := gw.Create(context.Background(), repository.CreateProductInput{Name: "x", Type: "y", SKU: "z"})
	require.Error(t, err)
	var be *domain.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusConflict, be.Status)
	assert.Equal(t, "Product with this SKU already exists", be.Message)
	assert.True(t, errors.Is(err, domain.ErrBackendRejection))
}

func TestUpdateQuantity_RutaYCuerpo(t *testing.T) {
	gw, _ := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/products/7/quantity", r.URL.Path)
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 12, body["quantity"])
		writeEnvelope(w, map[string]any{"id": 7, "name": "Teclado", "type": "electrónica", "sku": "TEC-1", "quantity": 12, "price": 45.5})
	}))

	updated, err := gw.UpdateQuantity(context.Background(), "7", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenYUsuario(t *testing.T) {
	_, gw := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "carla", body["username"])
		writeEnvelope(w, map[string]any{
			"token": "jwt-abc",
			"user":  map[string]any{"id": 1, "username": "carla"},
		})
	}))

	tok, user, err := gw.Login(context.Background(), repository.Credentials{Username: "carla", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)
	assert.Equal(t, "carla", user.Username)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	_, gw := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid username or password"}`))
	}))

	_, _, err := gw.Login(context.Background(), repository.Credentials{Username: "carla", Password: "mala"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	var be *domain.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "Invalid username or password", be.Message)
}

func TestRegister_CreaLaCuenta(t *testing.T) {
	_, gw := newGateways(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		writeEnvelope(w, map[string]any{"id": 5, "username": "carla"})
	}))

	user, err := gw.Register(context.Background(), repository.Credentials{Username: "carla", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "5", user.ID)
}
