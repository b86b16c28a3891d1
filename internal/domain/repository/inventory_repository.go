package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory.
type InventoryRepository interface {
	Create(item *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	// GetByProductID devuelve el registro canónico del producto (índice dueño),
	// o nil si el producto no tiene inventario asociado.
	GetByProductID(productID string) (*entity.Inventory, error)
	List() ([]*entity.Inventory, error)
	Update(item *entity.Inventory) error
	Delete(id string) (bool, error)
}
