// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria. El estado vive solo durante la vida del proceso: un reinicio lo
// descarta (almacén de demostración, sin durabilidad).
package memory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Store agrupa las cuatro colecciones y el índice dueño producto→inventario.
// Se construye explícitamente y se inyecta en los repositorios; no hay estado
// global de paquete.
//
// El índice inventoryByProduct garantiza estructuralmente que cada producto
// tiene a lo sumo un registro canónico de inventario: el primero registrado
// ocupa la entrada y los siguientes no la capturan.
type Store struct {
	mu sync.RWMutex

	products  map[string]*entity.Product
	inventory map[string]*entity.Inventory
	movements map[string]*entity.Movement
	reports   map[string]*entity.Report

	inventoryByProduct map[string]string // ProductID → Inventory.ID canónico
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:           make(map[string]*entity.Product),
		inventory:          make(map[string]*entity.Inventory),
		movements:          make(map[string]*entity.Movement),
		reports:            make(map[string]*entity.Report),
		inventoryByProduct: make(map[string]string),
	}
}

// Run ejecuta fn bajo la sección crítica del store, pasando repositorios sin
// bloqueo propio. Las secuencias buscar-y-mutar multi-registro (propagación de
// movimientos, cascadas producto↔inventario) resultan atómicas frente a otras
// peticiones. Equivale al TxRunner de una implementación con base de datos.
func (s *Store) Run(fn func(
	movements repository.MovementRepository,
	inventory repository.InventoryRepository,
	products repository.ProductRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(
		&MovementRepository{s: s, bare: true},
		&InventoryRepository{s: s, bare: true},
		&ProductRepository{s: s, bare: true},
	)
}

// registerInventory inserta el registro y reclama el índice dueño si el
// producto aún no tiene registro canónico. Llamar con el lock tomado.
func (s *Store) registerInventory(item *entity.Inventory) {
	s.inventory[item.ID] = item
	if _, taken := s.inventoryByProduct[item.ProductID]; !taken {
		s.inventoryByProduct[item.ProductID] = item.ID
	}
}

// removeInventory elimina el registro y libera el índice dueño si apuntaba a
// él. Llamar con el lock tomado.
func (s *Store) removeInventory(id string) bool {
	item, ok := s.inventory[id]
	if !ok {
		return false
	}
	delete(s.inventory, id)
	if s.inventoryByProduct[item.ProductID] == id {
		delete(s.inventoryByProduct, item.ProductID)
	}
	return true
}
