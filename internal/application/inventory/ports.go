package inventory

import "github.com/jhoicas/almacen-api/internal/domain/repository"

// Atomic ejecuta fn como sección crítica única del store, pasando
// repositorios ligados a esa sección. Garantiza que las secuencias
// buscar-y-mutar multi-registro del motor de consistencia (propagación de
// movimientos, cascadas producto↔inventario, edición directa de stock) sean
// atómicas frente a otras peticiones.
type Atomic interface {
	Run(fn func(
		movements repository.MovementRepository,
		inventory repository.InventoryRepository,
		products repository.ProductRepository,
	) error) error
}
