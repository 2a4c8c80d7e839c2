package entity

import "time"

// Supplier representa un proveedor del organismo.
type Supplier struct {
	ID        string
	Name      string
	CUIT      string // normalizado "XX-XXXXXXXX-X"
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
