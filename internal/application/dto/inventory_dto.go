package dto

import "time"

// CreateInventoryRequest entrada para crear un registro de inventario.
// No acepta status: el estado se deriva siempre del stock en el servidor.
type CreateInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Unit      string `json:"unit" validate:"required"`
	Stock     int    `json:"stock"`
}

// UpdateInventoryRequest actualización parcial. Tampoco acepta status; si
// Stock viene, el estado se recalcula.
type UpdateInventoryRequest struct {
	Unit  *string `json:"unit" validate:"omitempty,min=1"`
	Stock *int    `json:"stock"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Unit      string    `json:"unit"`
	Stock     int       `json:"stock"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
