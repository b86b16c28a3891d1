package memory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository adapta el puerto de productos sobre el Store.
// bare indica que el repo opera dentro de Store.Run y el lock ya está tomado.
type ProductRepository struct {
	s    *Store
	bare bool
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// Create guarda una copia del producto.
func (r *ProductRepository) Create(p *entity.Product) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List devuelve todos los productos.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el producto almacenado.
func (r *ProductRepository) Update(p *entity.Product) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

// Delete elimina el producto; devuelve si existía.
func (r *ProductRepository) Delete(id string) (bool, error) {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}
