package entity

import "time"

// User representa al usuario autenticado tal como lo devuelve el backend.
// El password nunca llega a esta capa: solo se reenvía en el login/registro.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
