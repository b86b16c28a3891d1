package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías del catálogo.
const (
	CategoriaA = "Categoria A"
	CategoriaB = "Categoria B"
	CategoriaC = "Categoria C"
)

// Product representa un producto del catálogo.
// Stock es un espejo del registro canónico de Inventory; se actualiza vía
// movimientos o por edición directa del producto, nunca de forma independiente.
type Product struct {
	ID        string
	Ref       string // código de referencia (ej. P001); la unicidad no se fuerza
	Name      string
	Category  string
	Price     decimal.Decimal // precio unitario, serializa como string de precisión exacta
	Stock     int
	CreatedAt time.Time
}
