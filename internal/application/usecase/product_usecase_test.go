package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func newProductUC(store *memory.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(store, memory.NewProductRepository(store))
}

// Crear un producto crea exactamente un registro de inventario acompañante
// con unidad por defecto y estado derivado del stock inicial.
func TestCreate_CascadaInventario(t *testing.T) {
	cases := []struct {
		name       string
		stock      int
		wantStatus string
	}{
		{"stock 0 → agotado", 0, entity.StatusAgotado},
		{"stock 10 → bajo_stock", 10, entity.StatusBajoStock},
		{"stock 11 → disponible", 11, entity.StatusDisponible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore()
			uc := newProductUC(store)

			out, err := uc.Create(dto.CreateProductRequest{
				Ref: "P010", Name: "Tornillos", Category: entity.CategoriaB,
				Price: decimal.RequireFromString("3.25"), Stock: intPtr(tc.stock),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.stock, out.Stock)

			inv, err := memory.NewInventoryRepository(store).GetByProductID(out.ID)
			require.NoError(t, err)
			require.NotNil(t, inv, "debe existir el inventario acompañante")
			assert.Equal(t, "Unidades", inv.Unit)
			assert.Equal(t, tc.stock, inv.Stock)
			assert.Equal(t, tc.wantStatus, inv.Status)
		})
	}
}

// Sin stock en el payload, el producto y su inventario arrancan en 0 (agotado).
func TestCreate_StockPorDefectoCero(t *testing.T) {
	store := memory.NewStore()
	uc := newProductUC(store)

	out, err := uc.Create(dto.CreateProductRequest{
		Ref: "P011", Name: "Lija", Category: entity.CategoriaC,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)

	inv, err := memory.NewInventoryRepository(store).GetByProductID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAgotado, inv.Status)
}

// La actualización parcial solo toca los campos enviados.
func TestUpdate_MergeParcial(t *testing.T) {
	store := memory.NewStore()
	uc := newProductUC(store)

	created, err := uc.Create(dto.CreateProductRequest{
		Ref: "P012", Name: "Cemento", Category: entity.CategoriaA,
		Price: decimal.RequireFromString("25.50"), Stock: intPtr(20),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: strPtr("Cemento Gris")})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Cemento Gris", out.Name)
	assert.Equal(t, "P012", out.Ref, "los campos no enviados se conservan")
	assert.Equal(t, 20, out.Stock)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("25.50")))
}

// Editar el stock directamente espeja el valor en el inventario canónico con
// el estado recalculado (producto fuente, inventario espejo).
func TestUpdate_StockDirectoSeEspeja(t *testing.T) {
	store := memory.NewStore()
	uc := newProductUC(store)

	created, err := uc.Create(dto.CreateProductRequest{
		Ref: "P013", Name: "Adhesivo", Category: entity.CategoriaB, Stock: intPtr(50),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: intPtr(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, out.Stock)

	inv, err := memory.NewInventoryRepository(store).GetByProductID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, inv.Stock)
	assert.Equal(t, entity.StatusBajoStock, inv.Status)
}

// Actualizar un producto inexistente devuelve nil (el handler lo mapea a 404).
func TestUpdate_NoExiste(t *testing.T) {
	store := memory.NewStore()
	uc := newProductUC(store)

	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Borrar un producto elimina su inventario canónico y devuelve true; borrar
// un ID inexistente devuelve false y no toca el inventario.
func TestDelete_CascadaYNoExistente(t *testing.T) {
	store := memory.NewStore()
	uc := newProductUC(store)
	invRepo := memory.NewInventoryRepository(store)

	created, err := uc.Create(dto.CreateProductRequest{
		Ref: "P014", Name: "Bolsas", Category: entity.CategoriaC, Stock: intPtr(200),
	})
	require.NoError(t, err)

	deleted, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	inv, err := invRepo.GetByProductID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, inv, "el inventario acompañante debe borrarse")

	deleted, err = uc.Delete("no-existe")
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err := invRepo.List()
	require.NoError(t, err)
	assert.Empty(t, list, "borrar un ID inexistente no toca el inventario")
}

// El inventario creado por la API nunca toma el estado del cliente: se deriva
// del stock en cada escritura.
func TestInventoryUseCase_EstadoSiempreDerivado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewInventoryUseCase(store, memory.NewInventoryRepository(store))

	created, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p9", Unit: "Litros", Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBajoStock, created.Status)

	updated, err := uc.Update(created.ID, dto.UpdateInventoryRequest{Stock: intPtr(0)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusAgotado, updated.Status)

	updated, err = uc.Update(created.ID, dto.UpdateInventoryRequest{Stock: intPtr(500)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisponible, updated.Status)
}
