package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/metrics"
)

// MovementUseCase registra movimientos en el ledger y propaga el delta de
// stock: Movement → Inventory (stock, estado derivado, timestamp) → Product
// (espejo del stock). Es el núcleo de consistencia del sistema.
type MovementUseCase struct {
	tx        Atomic
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(tx Atomic, movements repository.MovementRepository, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{tx: tx, movements: movements, log: log}
}

// Register persiste el movimiento siempre; la propagación solo ocurre si el
// producto tiene registro de inventario canónico. El delta no se recorta a
// valores no negativos: una salida o ajuste sin control puede llevar el stock
// por debajo de cero y el estado derivado lo clasifica como agotado.
//
// Si no hay inventario asociado, el movimiento queda igualmente en el ledger
// y el caso se registra como evento observable (log + contador), no como error.
func (uc *MovementUseCase) Register(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		Ref:         in.Ref,
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Description: in.Description,
		UserID:      in.UserID,
		CreatedAt:   now,
	}

	err := uc.tx.Run(func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		prodRepo repository.ProductRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		inv, err := invRepo.GetByProductID(in.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			metrics.MovimientosSinInventario.Inc()
			uc.log.Warn().
				Str("movement_id", mov.ID).
				Str("product_id", in.ProductID).
				Msg("movimiento sin registro de inventario: ledger actualizado, sin propagación")
			return nil
		}

		inv.Stock += in.Quantity
		inv.Status = stock.Derive(inv.Stock)
		inv.UpdatedAt = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}

		// Espejo del stock resultante en el producto
		product, err := prodRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			product.Stock = inv.Stock
			return prodRepo.Update(product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devuelve el ledger completo, del movimiento más reciente al más antiguo.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	list, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByDateRange filtra el ledger por CreatedAt en [from, to], inclusivo.
func (uc *MovementUseCase) ListByDateRange(from, to time.Time) ([]dto.MovementResponse, error) {
	list, err := uc.movements.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		Ref:         m.Ref,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Description: m.Description,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}

func toMovementResponses(list []*entity.Movement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items
}
