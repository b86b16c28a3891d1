package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es opcional
// (por defecto 0); el registro de inventario acompañante se crea siempre.
type CreateProductRequest struct {
	Ref      string          `json:"ref" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required,oneof='Categoria A' 'Categoria B' 'Categoria C'"`
	Price    decimal.Decimal `json:"price"`
	Stock    *int            `json:"stock"`
}

// UpdateProductRequest entrada para actualización parcial: solo los campos
// presentes se aplican. Si Stock viene, se propaga al inventario canónico.
type UpdateProductRequest struct {
	Ref      *string          `json:"ref" validate:"omitempty,min=1,max=100"`
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category" validate:"omitempty,oneof='Categoria A' 'Categoria B' 'Categoria C'"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Ref       string          `json:"ref"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
