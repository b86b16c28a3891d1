package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// La derivación de estado es una función total del stock:
// s <= 0 → agotado; 1..10 → bajo_stock; > 10 → disponible.
func TestDerive_Bandas(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		want  string
	}{
		{"cero es agotado", 0, entity.StatusAgotado},
		{"negativo es agotado", -10, entity.StatusAgotado},
		{"muy negativo es agotado", -1000, entity.StatusAgotado},
		{"uno es bajo_stock", 1, entity.StatusBajoStock},
		{"cinco es bajo_stock", 5, entity.StatusBajoStock},
		{"diez es bajo_stock (límite inclusivo)", 10, entity.StatusBajoStock},
		{"once es disponible", 11, entity.StatusDisponible},
		{"grande es disponible", 100000, entity.StatusDisponible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Derive(tc.stock))
		})
	}
}
