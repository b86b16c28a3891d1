// Package analytics contiene el caso de uso del dashboard. Las cifras de
// ingresos, envíos y distribución de materiales son placeholders fijos; solo
// el total de productos y el stock agregado salen del catálogo real.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase agrega las métricas del dashboard.
type DashboardUseCase struct {
	products repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products}
}

// GetSummary devuelve el agregado: recuento de productos y suma de stock
// calculados, más las cifras placeholder.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	totalStock := 0
	for _, p := range list {
		totalStock += p.Stock
	}

	return &dto.DashboardResponse{
		MonthlyIncome:   decimal.RequireFromString("54000.00"),
		MonthlyExpenses: decimal.RequireFromString("32000.00"),
		TotalProducts:   len(list),
		TotalStock:      totalStock,
		ShippingData: []dto.MonthValueDTO{
			{Month: "Ene", Value: 30},
			{Month: "Feb", Value: 45},
			{Month: "Mar", Value: 35},
			{Month: "Abr", Value: 50},
			{Month: "May", Value: 40},
			{Month: "Jun", Value: 60},
		},
		MaterialData: []dto.MaterialShareDTO{
			{Name: "CEMENTO", Value: 35, Color: "#FB923C"},
			{Name: "STICKERS", Value: 25, Color: "#10B981"},
			{Name: "BAGS", Value: 20, Color: "#60A5FA"},
			{Name: "BOX", Value: 20, Color: "#1F2937"},
		},
	}, nil
}
