package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementRepository adapta el puerto del ledger sobre el Store.
// El ledger es append-only: no expone actualización ni borrado.
type MovementRepository struct {
	s    *Store
	bare bool
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(s *Store) *MovementRepository {
	return &MovementRepository{s: s}
}

// Create guarda la entrada del ledger.
func (r *MovementRepository) Create(m *entity.Movement) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *m
	r.s.movements[m.ID] = &cp
	return nil
}

// GetByID devuelve el movimiento o nil si no existe.
func (r *MovementRepository) GetByID(id string) (*entity.Movement, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// List devuelve los movimientos ordenados del más reciente al más antiguo,
// independientemente del orden de inserción.
func (r *MovementRepository) List() ([]*entity.Movement, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.sorted(func(*entity.Movement) bool { return true }), nil
}

// ListByDateRange filtra por CreatedAt en [from, to], extremos inclusivos.
func (r *MovementRepository) ListByDateRange(from, to time.Time) ([]*entity.Movement, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return r.sorted(func(m *entity.Movement) bool {
		return !m.CreatedAt.Before(from) && !m.CreatedAt.After(to)
	}), nil
}

// sorted copia los movimientos que pasan el filtro y los ordena descendente.
// Llamar con el lock tomado.
func (r *MovementRepository) sorted(keep func(*entity.Movement) bool) []*entity.Movement {
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
