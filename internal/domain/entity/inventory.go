package entity

import "time"

// Estados de inventario, derivados únicamente del stock (ver domain/stock).
const (
	StatusDisponible = "disponible" // stock > 10
	StatusBajoStock  = "bajo_stock" // 1..10
	StatusAgotado    = "agotado"    // stock <= 0
)

// Inventory representa el registro de stock y estado asociado a un producto.
// Status nunca se acepta del cliente; se recalcula en cada mutación de stock.
type Inventory struct {
	ID        string
	ProductID string
	Unit      string // unidad de medida (Sacos, Litros, Unidades...)
	Stock     int
	Status    string
	UpdatedAt time.Time
}
