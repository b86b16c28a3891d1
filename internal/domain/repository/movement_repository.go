package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. Solo creación y consulta: el ledger es append-only.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve los movimientos ordenados por fecha de creación descendente.
	List() ([]*entity.Movement, error)
	// ListByDateRange filtra por CreatedAt en [from, to], ambos extremos inclusivos.
	ListByDateRange(from, to time.Time) ([]*entity.Movement, error)
}
