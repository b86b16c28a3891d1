// Package stock contiene las reglas puras de consistencia de inventario.
package stock

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Límite superior (inclusivo) de la banda de stock bajo.
const bajoStockMax = 10

// Derive calcula el estado de inventario a partir del nivel de stock.
// Función total: stock <= 0 → agotado; 1..10 → bajo_stock; > 10 → disponible.
// No se fuerza la no-negatividad: un valor negativo clasifica como agotado.
func Derive(stock int) string {
	switch {
	case stock <= 0:
		return entity.StatusAgotado
	case stock <= bajoStockMax:
		return entity.StatusBajoStock
	default:
		return entity.StatusDisponible
	}
}
