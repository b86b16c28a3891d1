package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento. El signo de
// Quantity lo fija quien registra (salida/ajuste negativo van en negativo).
type CreateMovementRequest struct {
	Ref         string `json:"ref" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=entrada salida ajuste"`
	Quantity    int    `json:"quantity" validate:"required"`
	Description string `json:"description"`
	UserID      string `json:"user_id" validate:"required"`
}

// MovementResponse salida de una entrada del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	Ref         string    `json:"ref"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
