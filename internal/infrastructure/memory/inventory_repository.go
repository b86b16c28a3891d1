package memory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// InventoryRepository adapta el puerto de inventario sobre el Store.
type InventoryRepository struct {
	s    *Store
	bare bool
}

// NewInventoryRepository construye el repositorio.
func NewInventoryRepository(s *Store) *InventoryRepository {
	return &InventoryRepository{s: s}
}

// Create guarda el registro y reclama el índice dueño si está libre.
func (r *InventoryRepository) Create(item *entity.Inventory) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *item
	r.s.registerInventory(&cp)
	return nil
}

// GetByID devuelve el registro o nil si no existe.
func (r *InventoryRepository) GetByID(id string) (*entity.Inventory, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	item, ok := r.s.inventory[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

// GetByProductID resuelve el registro canónico vía el índice dueño.
func (r *InventoryRepository) GetByProductID(productID string) (*entity.Inventory, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	id, ok := r.s.inventoryByProduct[productID]
	if !ok {
		return nil, nil
	}
	cp := *r.s.inventory[id]
	return &cp, nil
}

// List devuelve todos los registros de inventario.
func (r *InventoryRepository) List() ([]*entity.Inventory, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	out := make([]*entity.Inventory, 0, len(r.s.inventory))
	for _, item := range r.s.inventory {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el registro almacenado.
func (r *InventoryRepository) Update(item *entity.Inventory) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *item
	r.s.inventory[item.ID] = &cp
	return nil
}

// Delete elimina el registro y libera el índice dueño; devuelve si existía.
func (r *InventoryRepository) Delete(id string) (bool, error) {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return r.s.removeInventory(id), nil
}
