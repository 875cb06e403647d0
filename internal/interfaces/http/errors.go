package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
)

// writeError traduce la taxonomía de errores del dominio a HTTP.
// Los errores de validación llevan el campo afectado; un rechazo del backend
// conserva su status y mensaje originales.
func writeError(c *fiber.Ctx, err error) error {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fe.Message, Field: fe.Field})
	}
	var be *domain.BackendError
	if errors.As(err, &be) {
		code := "BACKEND_REJECTION"
		if be.Status == fiber.StatusUnauthorized {
			code = "UNAUTHORIZED"
		}
		msg := be.Message
		if msg == "" {
			msg = "el backend rechazó la operación"
		}
		return c.Status(be.Status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrEditInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EDIT_IN_FLIGHT", Message: "ya hay una actualización en curso para este producto"})
	case errors.Is(err, domain.ErrFetchFailure):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "FETCH_FAILURE", Message: "no se pudo consultar el backend"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
