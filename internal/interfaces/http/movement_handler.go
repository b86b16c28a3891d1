package http

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinventory "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/validate"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc *appinventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *appinventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento (propaga stock a inventario y producto)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if violations := validate.Struct(in); violations != nil {
		return validationFailed(c, violations)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "movimiento inválido",
			})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByDateRange godoc
// @Summary      Filtrar movimientos por rango de fechas (inclusivo)
// @Tags         movements
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (YYYY-MM-DD o RFC 3339)"
// @Param        to    query  string  true  "Fecha final (YYYY-MM-DD o RFC 3339)"
// @Success      200   {array}   dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/date-range [get]
func (h *MovementHandler) ListByDateRange(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_RANGE", Message: "from y to son requeridos",
		})
	}
	from, err := parseDate(fromStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "from no es una fecha válida",
		})
	}
	to, err := parseDate(toStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_DATE", Message: "to no es una fecha válida",
		})
	}
	out, err := h.uc.ListByDateRange(from, to)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el ledger como CSV
// @Tags         movements
// @Produce      text/csv
// @Success      200
// @Router       /api/movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "ref", "product_id", "type", "quantity", "description", "user_id", "created_at"})
	for _, m := range list {
		_ = w.Write([]string{
			m.ID, m.Ref, m.ProductID, m.Type,
			strconv.Itoa(m.Quantity), m.Description, m.UserID,
			m.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.Send(buf.Bytes())
}

// parseDate acepta fecha corta o RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
