package dto

import "github.com/shopspring/decimal"

// MonthValueDTO punto de la serie mensual del dashboard.
type MonthValueDTO struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// MaterialShareDTO porción del gráfico de distribución de materiales.
type MaterialShareDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DashboardResponse agregado del dashboard. TotalProducts y TotalStock se
// calculan del catálogo; las demás cifras son placeholders fijos.
type DashboardResponse struct {
	MonthlyIncome   decimal.Decimal    `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal    `json:"monthly_expenses"`
	TotalProducts   int                `json:"total_products"`
	TotalStock      int                `json:"total_stock"`
	ShippingData    []MonthValueDTO    `json:"shipping_data"`
	MaterialData    []MaterialShareDTO `json:"material_data"`
}
