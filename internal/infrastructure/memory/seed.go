package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// Seed carga el catálogo de demostración: tres productos con su inventario y
// dos movimientos históricos. Los movimientos del seed son entradas previas
// del ledger, no se propagan al stock.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	demo := []struct {
		ref, name, category, price, unit string
		stock                            int
	}{
		{"P001", "Cemento Portland", entity.CategoriaA, "25.50", "Sacos", 150},
		{"P002", "Adhesivos Industriales", entity.CategoriaB, "45.00", "Litros", 75},
		{"P003", "Bolsas de Empaque", entity.CategoriaC, "12.99", "Unidades", 200},
	}

	productIDs := make([]string, 0, len(demo))
	for _, d := range demo {
		p := &entity.Product{
			ID:        uuid.New().String(),
			Ref:       d.ref,
			Name:      d.name,
			Category:  d.category,
			Price:     decimal.RequireFromString(d.price),
			Stock:     d.stock,
			CreatedAt: now,
		}
		s.products[p.ID] = p
		productIDs = append(productIDs, p.ID)

		s.registerInventory(&entity.Inventory{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Unit:      d.unit,
			Stock:     d.stock,
			Status:    stock.Derive(d.stock),
			UpdatedAt: now,
		})
	}

	movements := []*entity.Movement{
		{
			ID:          uuid.New().String(),
			Ref:         "MOV001",
			ProductID:   productIDs[0],
			Type:        entity.MovementEntrada,
			Quantity:    50,
			Description: "Entrada de cemento",
			UserID:      "admin",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          uuid.New().String(),
			Ref:         "MOV002",
			ProductID:   productIDs[1],
			Type:        entity.MovementSalida,
			Quantity:    -25,
			Description: "Salida de adhesivos",
			UserID:      "vendedor",
			CreatedAt:   now.Add(-time.Hour),
		},
	}
	for _, m := range movements {
		s.movements[m.ID] = m
	}
}
