package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// InventoryUseCase casos de uso para los registros de inventario. El estado
// nunca se acepta del cliente: se deriva del stock en cada escritura.
type InventoryUseCase struct {
	tx   appinventory.Atomic
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(tx appinventory.Atomic, repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{tx: tx, repo: repo}
}

// List devuelve todos los registros ordenados por producto.
func (uc *InventoryUseCase) List() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductID < list[j].ProductID })
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryResponse(it))
	}
	return items, nil
}

// Create crea un registro con estado derivado del stock enviado. El primer
// registro de un producto pasa a ser su registro canónico.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	item := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Unit:      in.Unit,
		Stock:     in.Stock,
		Status:    stock.Derive(in.Stock),
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Update aplica una actualización parcial; si el payload trae stock, el
// estado se recalcula. Devuelve nil si el registro no existe.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	var out *dto.InventoryResponse
	err := uc.tx.Run(func(
		_ repository.MovementRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		item, err := invRepo.GetByID(id)
		if err != nil || item == nil {
			return err
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.Stock != nil {
			item.Stock = *in.Stock
			item.Status = stock.Derive(item.Stock)
		}
		item.UpdatedAt = time.Now()
		if err := invRepo.Update(item); err != nil {
			return err
		}
		out = toInventoryResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toInventoryResponse(it *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Unit:      it.Unit,
		Stock:     it.Stock,
		Status:    it.Status,
		UpdatedAt: it.UpdatedAt,
	}
}
