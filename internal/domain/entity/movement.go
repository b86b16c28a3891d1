package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementEntrada = "entrada"
	MovementSalida  = "salida"
	MovementAjuste  = "ajuste"
)

// ValidMovementType indica si el tipo pertenece al vocabulario del ledger.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSalida || t == MovementAjuste
}

// Movement es una entrada inmutable del ledger: un cambio de cantidad con
// signo contra un producto. Nunca se actualiza ni se elimina tras crearse.
type Movement struct {
	ID          string
	Ref         string
	ProductID   string
	Type        string // entrada, salida, ajuste
	Quantity    int    // delta con signo; el signo lo fija quien registra
	Description string
	UserID      string
	CreatedAt   time.Time
}
