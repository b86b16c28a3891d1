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

// Unidad por defecto del registro de inventario acompañante.
const defaultUnit = "Unidades"

// ProductUseCase casos de uso CRUD para productos. Crear y borrar un producto
// arrastran su registro de inventario acompañante; la edición directa de
// stock se espeja en el inventario canónico con estado recalculado.
type ProductUseCase struct {
	tx   appinventory.Atomic
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx appinventory.Atomic, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{tx: tx, repo: repo}
}

// Create crea el producto junto con su registro de inventario: unidad por
// defecto y estado derivado del stock inicial (0 si no se envía).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	initialStock := 0
	if in.Stock != nil {
		initialStock = *in.Stock
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Ref:       in.Ref,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Stock:     initialStock,
		CreatedAt: now,
	}
	item := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Unit:      defaultUnit,
		Stock:     initialStock,
		Status:    stock.Derive(initialStock),
		UpdatedAt: now,
	}

	err := uc.tx.Run(func(
		_ repository.MovementRepository,
		invRepo repository.InventoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		if err := prodRepo.Create(product); err != nil {
			return err
		}
		return invRepo.Create(item)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo ordenado por referencia.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Ref < list[j].Ref })
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial: solo los campos enviados. Si el
// payload trae stock, el producto es la fuente y el inventario canónico el
// espejo: mismo valor, estado recalculado, timestamp refrescado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(func(
		_ repository.MovementRepository,
		invRepo repository.InventoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		product, err := prodRepo.GetByID(id)
		if err != nil || product == nil {
			return err
		}
		if in.Ref != nil {
			product.Ref = *in.Ref
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
			item, err := invRepo.GetByProductID(id)
			if err != nil {
				return err
			}
			if item != nil {
				item.Stock = *in.Stock
				item.Status = stock.Derive(item.Stock)
				item.UpdatedAt = time.Now()
				if err := invRepo.Update(item); err != nil {
					return err
				}
			}
		}
		if err := prodRepo.Update(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el producto y su registro de inventario canónico (si lo
// tiene). Devuelve si el producto existía; si no existía, el inventario
// queda intacto.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	var deleted bool
	err := uc.tx.Run(func(
		_ repository.MovementRepository,
		invRepo repository.InventoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		var err error
		deleted, err = prodRepo.Delete(id)
		if err != nil || !deleted {
			return err
		}
		item, err := invRepo.GetByProductID(id)
		if err != nil || item == nil {
			return err
		}
		_, err = invRepo.Delete(item.ID)
		return err
	})
	return deleted, err
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Ref:       p.Ref,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}
