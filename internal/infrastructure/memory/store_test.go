package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

// El primer registro de inventario de un producto reclama el índice dueño;
// los siguientes existen pero no son canónicos.
func TestInventoryRepository_IndicePrimerRegistroGana(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewInventoryRepository(store)

	primero := &entity.Inventory{ID: "i1", ProductID: "p1", Unit: "Sacos", Stock: 5, Status: entity.StatusBajoStock}
	segundo := &entity.Inventory{ID: "i2", ProductID: "p1", Unit: "Cajas", Stock: 99, Status: entity.StatusDisponible}
	require.NoError(t, repo.Create(primero))
	require.NoError(t, repo.Create(segundo))

	canonico, err := repo.GetByProductID("p1")
	require.NoError(t, err)
	require.NotNil(t, canonico)
	assert.Equal(t, "i1", canonico.ID, "el primer registro debe ser el canónico")

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 2, "ambos registros existen aunque solo uno sea canónico")
}

// Al borrar el registro canónico se libera el índice dueño.
func TestInventoryRepository_DeleteLiberaIndice(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewInventoryRepository(store)

	require.NoError(t, repo.Create(&entity.Inventory{ID: "i1", ProductID: "p1", Unit: "Sacos"}))

	deleted, err := repo.Delete("i1")
	require.NoError(t, err)
	assert.True(t, deleted)

	canonico, err := repo.GetByProductID("p1")
	require.NoError(t, err)
	assert.Nil(t, canonico)

	deleted, err = repo.Delete("i1")
	require.NoError(t, err)
	assert.False(t, deleted, "borrar dos veces debe indicar que ya no existía")
}

// El listado del ledger siempre sale del más reciente al más antiguo,
// sin importar el orden de inserción.
func TestMovementRepository_ListOrdenDescendente(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewMovementRepository(store)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&entity.Movement{ID: "m2", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "m1", CreatedAt: base}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "m3", CreatedAt: base.Add(2 * time.Hour)}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m3", list[0].ID)
	assert.Equal(t, "m2", list[1].ID)
	assert.Equal(t, "m1", list[2].ID)
}

// El filtro por rango incluye los movimientos cuyo timestamp coincide con
// cualquiera de los dos extremos.
func TestMovementRepository_DateRangeInclusivo(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewMovementRepository(store)

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(&entity.Movement{ID: "antes", CreatedAt: from.Add(-time.Second)}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "en-from", CreatedAt: from}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "dentro", CreatedAt: from.Add(48 * time.Hour)}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "en-to", CreatedAt: to}))
	require.NoError(t, repo.Create(&entity.Movement{ID: "despues", CreatedAt: to.Add(time.Second)}))

	list, err := repo.ListByDateRange(from, to)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"en-from", "dentro", "en-to"}, ids)
}

// El seed carga el catálogo de demostración completo.
func TestStore_Seed(t *testing.T) {
	store := memory.NewStore()
	store.Seed()

	products, err := memory.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, products, 3)

	inventory, err := memory.NewInventoryRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, inventory, 3)
	for _, it := range inventory {
		assert.Equal(t, entity.StatusDisponible, it.Status, "todo el stock del seed supera el umbral de bajo stock")
	}

	movements, err := memory.NewMovementRepository(store).List()
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "MOV002", movements[0].Ref, "el movimiento más reciente va primero")
}
