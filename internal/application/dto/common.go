package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // presente en errores de validación
}

// Kinds de notificación transitoria.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification aviso transitorio para el usuario (el toast de la UI).
type Notification struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"` // success | error
	Message string `json:"message"`
}
