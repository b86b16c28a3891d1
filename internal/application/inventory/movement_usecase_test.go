package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// setupConProducto deja un producto con su inventario canónico en el store.
func setupConProducto(t *testing.T, stockInicial int, status string) (*memory.Store, *appinventory.MovementUseCase) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.NewProductRepository(store).Create(&entity.Product{
		ID: "p1", Ref: "P001", Name: "Cemento Portland", Category: entity.CategoriaA, Stock: stockInicial,
	}))
	require.NoError(t, memory.NewInventoryRepository(store).Create(&entity.Inventory{
		ID: "i1", ProductID: "p1", Unit: "Sacos", Stock: stockInicial, Status: status,
	}))
	uc := appinventory.NewMovementUseCase(store, memory.NewMovementRepository(store), newTestLogger())
	return store, uc
}

// Una entrada de +50 sobre stock 150 deja inventario y producto en 200,
// con estado disponible.
func TestRegister_EntradaPropagaStock(t *testing.T) {
	store, uc := setupConProducto(t, 150, entity.StatusDisponible)

	out, err := uc.Register(dto.CreateMovementRequest{
		Ref: "MOV010", ProductID: "p1", Type: entity.MovementEntrada,
		Quantity: 50, UserID: "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())

	inv, err := memory.NewInventoryRepository(store).GetByProductID("p1")
	require.NoError(t, err)
	assert.Equal(t, 200, inv.Stock)
	assert.Equal(t, entity.StatusDisponible, inv.Status)
	assert.False(t, inv.UpdatedAt.IsZero(), "la propagación refresca el timestamp")

	product, err := memory.NewProductRepository(store).GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 200, product.Stock, "el producto espeja el stock del inventario")
}

// Una salida de −60 sobre stock 50 lleva el stock a −10: la no-negatividad
// no se fuerza y el estado derivado clasifica el valor como agotado.
func TestRegister_SalidaPuedeDejarStockNegativo(t *testing.T) {
	store, uc := setupConProducto(t, 50, entity.StatusDisponible)

	_, err := uc.Register(dto.CreateMovementRequest{
		Ref: "MOV011", ProductID: "p1", Type: entity.MovementSalida,
		Quantity: -60, UserID: "vendedor",
	})
	require.NoError(t, err)

	inv, err := memory.NewInventoryRepository(store).GetByProductID("p1")
	require.NoError(t, err)
	assert.Equal(t, -10, inv.Stock)
	assert.Equal(t, entity.StatusAgotado, inv.Status)

	product, err := memory.NewProductRepository(store).GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, -10, product.Stock)
}

// Un ajuste que deja el stock dentro de la banda baja deriva bajo_stock.
func TestRegister_AjusteDerivaBajoStock(t *testing.T) {
	store, uc := setupConProducto(t, 15, entity.StatusDisponible)

	_, err := uc.Register(dto.CreateMovementRequest{
		Ref: "MOV012", ProductID: "p1", Type: entity.MovementAjuste,
		Quantity: -5, UserID: "admin",
	})
	require.NoError(t, err)

	inv, err := memory.NewInventoryRepository(store).GetByProductID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, inv.Stock)
	assert.Equal(t, entity.StatusBajoStock, inv.Status, "10 es el límite inclusivo de bajo_stock")
}

// Un movimiento contra un producto sin inventario queda en el ledger pero no
// toca ningún stock: no-op observable, no error.
func TestRegister_SinInventarioPersisteSinPropagar(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.NewProductRepository(store).Create(&entity.Product{
		ID: "huerfano", Ref: "P099", Name: "Sin inventario", Category: entity.CategoriaB, Stock: 7,
	}))
	movRepo := memory.NewMovementRepository(store)
	uc := appinventory.NewMovementUseCase(store, movRepo, newTestLogger())

	out, err := uc.Register(dto.CreateMovementRequest{
		Ref: "MOV013", ProductID: "huerfano", Type: entity.MovementEntrada,
		Quantity: 40, UserID: "admin",
	})
	require.NoError(t, err, "la falta de inventario no es un error")
	require.NotNil(t, out)

	ledger, err := movRepo.List()
	require.NoError(t, err)
	assert.Len(t, ledger, 1, "el movimiento se persiste igualmente")

	product, err := memory.NewProductRepository(store).GetByID("huerfano")
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock, "el stock del producto queda intacto")
}

// Tipo fuera del vocabulario o cantidad cero rechazan el movimiento.
func TestRegister_EntradaInvalida(t *testing.T) {
	_, uc := setupConProducto(t, 100, entity.StatusDisponible)

	_, err := uc.Register(dto.CreateMovementRequest{
		Ref: "MOV014", ProductID: "p1", Type: "traslado", Quantity: 5, UserID: "admin",
	})
	assert.Error(t, err, "tipo desconocido debe rechazarse")

	_, err = uc.Register(dto.CreateMovementRequest{
		Ref: "MOV015", ProductID: "p1", Type: entity.MovementEntrada, Quantity: 0, UserID: "admin",
	})
	assert.Error(t, err, "cantidad cero debe rechazarse")
}

// El listado sale ordenado del más reciente al más antiguo.
func TestList_OrdenDescendente(t *testing.T) {
	_, uc := setupConProducto(t, 100, entity.StatusDisponible)

	for _, ref := range []string{"MOV020", "MOV021", "MOV022"} {
		_, err := uc.Register(dto.CreateMovementRequest{
			Ref: ref, ProductID: "p1", Type: entity.MovementEntrada, Quantity: 1, UserID: "admin",
		})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "MOV022", list[0].Ref)
	assert.Equal(t, "MOV021", list[1].Ref)
	assert.Equal(t, "MOV020", list[2].Ref)
}
