package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: ErrValidation se resuelve localmente (campo a campo) y nunca llega
// al canal de notificaciones; ErrBackendRejection y ErrFetchFailure siempre se
// notifican al usuario. Ningún error de esta capa es fatal: la vista conserva
// el último estado válido conocido.
var (
	ErrValidation       = errors.New("entrada inválida")
	ErrBackendRejection = errors.New("el backend rechazó la operación")
	ErrFetchFailure     = errors.New("no se pudo consultar el backend")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrEditInFlight     = errors.New("ya hay una actualización en curso para este producto")
)

// FieldError error de validación asociado a un campo concreto del formulario.
type FieldError struct {
	Field   string
	Message string
}

// Error implementa error.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap permite errors.Is(err, ErrValidation).
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError construye un error de validación de campo.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// BackendError rechazo del backend con el mensaje legible de su payload.
type BackendError struct {
	Status  int    // código HTTP devuelto por el backend
	Message string // mensaje del payload, o vacío si no venía
}

// Error implementa error.
func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrBackendRejection.Error()
}

// Unwrap permite errors.Is(err, ErrBackendRejection) y, para un 401,
// errors.Is(err, ErrUnauthorized).
func (e *BackendError) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return ErrBackendRejection
}
