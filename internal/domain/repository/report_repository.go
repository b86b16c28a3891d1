package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para Report.
type ReportRepository interface {
	Create(report *entity.Report) error
	// List devuelve los reportes ordenados por fecha de creación descendente.
	List() ([]*entity.Report, error)
	Delete(id string) (bool, error)
}
