package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReportUseCase casos de uso para reportes: crear, listar y borrar. No existe
// actualización; los reportes son registros inertes.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Create crea un reporte; las fechas del rango llegan como string y se
// convierten a timestamps (YYYY-MM-DD o RFC 3339).
func (uc *ReportUseCase) Create(in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	dateFrom, err := parseOptionalDate(in.DateFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dateTo, err := parseOptionalDate(in.DateTo)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	report := &entity.Report{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Description: in.Description,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		Data:        in.Data,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// List devuelve los reportes del más reciente al más antiguo.
func (uc *ReportUseCase) List() ([]dto.ReportResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return items, nil
}

// Delete elimina un reporte; devuelve si existía.
func (uc *ReportUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// parseOptionalDate acepta vacío (nil), fecha corta o RFC 3339.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, domain.ErrInvalidInput
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:          r.ID,
		Type:        r.Type,
		Description: r.Description,
		DateFrom:    r.DateFrom,
		DateTo:      r.DateTo,
		Data:        r.Data,
		CreatedAt:   r.CreatedAt,
	}
}
