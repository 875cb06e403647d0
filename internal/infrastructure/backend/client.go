// Package backend implementa los puertos del dominio contra la API HTTP del
// backend de inventario (el colaborador externo dueño de toda la lógica de
// negocio). El formato de cable es suyo: sobre {success, message, data} en
// éxito y, en error, el mismo sobre o un {detail} plano.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/config"
	"github.com/jhoicas/Inventario-web/pkg/logger"
)

// Client cliente HTTP base hacia el backend. Las structs gateway por recurso
// (productos, auth) se construyen sobre él.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente con el timeout de transporte configurado.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     log.Component("backend"),
	}
}

// envelope sobre estándar de respuesta del backend.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// errorBody forma alternativa de error (framework del backend).
type errorBody struct {
	Detail string `json:"detail"`
}

// do ejecuta una petición JSON. El token de sesión, si viene en el contexto,
// se reenvía como Bearer. En éxito decodifica envelope.data en out (si out no
// es nil); en error devuelve *domain.BackendError con el mensaje del payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar petición: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := repository.TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("fallo de transporte")
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &domain.BackendError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("backend: respuesta no es JSON: %w", err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("backend: respuesta sin data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: decodificar data: %w", err)
	}
	return nil
}

// errorMessage extrae el mensaje legible de un cuerpo de error.
func errorMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Detail != "" {
		return eb.Detail
	}
	return ""
}
