package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCompras  = "compras"
	RoleConsulta = "consulta"
)

// User representa un operador del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, compras, consulta
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
