// Package notify implementa el canal de notificaciones transitorias.
//
// El contrato es el de un toast: éxito o error de crear/actualizar se encola
// aquí y el handler de la siguiente respuesta lo drena hacia la UI. Los
// errores de validación de campo nunca pasan por este canal.
package notify

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
)

// Notifier cola de notificaciones pendientes de entregar a la UI.
// Seguro para uso concurrente: cada petición HTTP puede encolar o drenar.
type Notifier struct {
	mu      sync.Mutex
	pending []dto.Notification
}

// New construye un Notifier vacío.
func New() *Notifier {
	return &Notifier{}
}

// Success encola una notificación de éxito.
func (n *Notifier) Success(message string) {
	n.push(dto.NotificationSuccess, message)
}

// Error encola una notificación de error.
func (n *Notifier) Error(message string) {
	n.push(dto.NotificationError, message)
}

func (n *Notifier) push(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.pending = append(n.pending, dto.Notification{
		ID:      uuid.New().String(),
		Kind:    kind,
		Message: message,
	})
}

// Drain devuelve las notificaciones pendientes y vacía la cola.
// Nunca devuelve nil: la UI siempre recibe un arreglo.
func (n *Notifier) Drain() []dto.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]dto.Notification, len(n.pending))
	copy(out, n.pending)
	n.pending = n.pending[:0]
	return out
}
