package inventory

import (
	"context"
	"sync"

	"github.com/jhoicas/Inventario-web/internal/domain"
)

// EditState estado del ciclo de edición de cantidad de un producto.
type EditState int

const (
	StateViewing    EditState = iota // se muestra la cantidad confirmada
	StateEditing                     // hay un valor propuesto local, aún no enviado
	StateCommitting                  // actualización en vuelo hacia el backend
)

// String para logs y mensajes.
func (s EditState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateCommitting:
		return "committing"
	default:
		return "viewing"
	}
}

type editSession struct {
	committed int // último valor confirmado por el backend
	proposed  int // candidato local, aún no enviado
	state     EditState
}

// Coordinator gobierna la transición de la cantidad de cada producto entre su
// valor confirmado y un valor propuesto, y la reconciliación con el backend.
//
// Garantiza a lo sumo un commit en vuelo por producto: mientras un registro
// está en Committing cualquier reintento de edición sobre ese registro se
// rechaza con ErrEditInFlight, sin bloquear al resto de la vista.
type Coordinator struct {
	mu       sync.Mutex
	sessions map[string]*editSession
}

// NewCoordinator construye un coordinador sin ediciones activas.
func NewCoordinator() *Coordinator {
	return &Coordinator{sessions: make(map[string]*editSession)}
}

// BeginEdit pasa el producto de Viewing a Editing con el valor propuesto
// inicializado a la cantidad confirmada actual. Re-entrar desde Editing
// reinicia la propuesta; desde Committing devuelve ErrEditInFlight.
func (c *Coordinator) BeginEdit(id string, committed int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id]; ok && s.state == StateCommitting {
		return domain.ErrEditInFlight
	}
	c.sessions[id] = &editSession{committed: committed, proposed: committed, state: StateEditing}
	return nil
}

// Propose registra un candidato local. Exige entero >= 0 y estado Editing.
func (c *Coordinator) Propose(id string, value int) error {
	if value < 0 {
		return domain.NewFieldError("quantity", "la cantidad debe ser 0 o mayor")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok || s.state != StateEditing {
		return domain.ErrEditInFlight
	}
	s.proposed = value
	return nil
}

// Cancel descarta la propuesta y vuelve a Viewing. Siempre disponible desde
// Editing y sin efecto de red; un commit en vuelo no es cancelable.
func (c *Coordinator) Cancel(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok {
		return nil
	}
	if s.state == StateCommitting {
		return domain.ErrEditInFlight
	}
	delete(c.sessions, id)
	return nil
}

// State devuelve el estado actual del producto (Viewing si no hay sesión).
func (c *Coordinator) State(id string) EditState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.sessions[id]; ok {
		return s.state
	}
	return StateViewing
}

// Submit confirma la propuesta contra el backend vía commit.
//
//   - Propuesta igual al valor confirmado: vuelve directo a Viewing sin llamada
//     de red y devuelve sent=false.
//   - Éxito: el valor confirmado pasa a ser la propuesta y la sesión termina en
//     Viewing; el llamante debe refrescar el snapshot (el coordinador no asume
//     que su valor optimista coincide con lo recalculado por el servidor).
//   - Rechazo del backend: la edición se abandona, el valor confirmado previo
//     se conserva y el error se propaga para notificarse; no hay reintento.
func (c *Coordinator) Submit(ctx context.Context, id string, commit func(ctx context.Context, quantity int) error) (sent bool, err error) {
	c.mu.Lock()
	s, ok := c.sessions[id]
	if !ok {
		c.mu.Unlock()
		return false, domain.NewFieldError("quantity", "no hay edición activa para este producto")
	}
	if s.state == StateCommitting {
		c.mu.Unlock()
		return false, domain.ErrEditInFlight
	}
	if s.proposed == s.committed {
		// No-op: nada que enviar.
		delete(c.sessions, id)
		c.mu.Unlock()
		return false, nil
	}
	if s.proposed < 0 {
		c.mu.Unlock()
		return false, domain.NewFieldError("quantity", "la cantidad debe ser 0 o mayor")
	}
	s.state = StateCommitting
	proposed := s.proposed
	c.mu.Unlock()

	// Llamada de red fuera del lock: el resto de la vista sigue respondiendo.
	commitErr := commit(ctx, proposed)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	if commitErr != nil {
		// El valor propuesto nunca se filtra al estado confirmado.
		return true, commitErr
	}
	return true, nil
}
