package memory

import (
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ReportRepository adapta el puerto de reportes sobre el Store.
type ReportRepository struct {
	s    *Store
	bare bool
}

// NewReportRepository construye el repositorio.
func NewReportRepository(s *Store) *ReportRepository {
	return &ReportRepository{s: s}
}

// Create guarda el reporte.
func (r *ReportRepository) Create(rep *entity.Report) error {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	cp := *rep
	r.s.reports[rep.ID] = &cp
	return nil
}

// List devuelve los reportes del más reciente al más antiguo.
func (r *ReportRepository) List() ([]*entity.Report, error) {
	if !r.bare {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	out := make([]*entity.Report, 0, len(r.s.reports))
	for _, rep := range r.s.reports {
		cp := *rep
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete elimina el reporte; devuelve si existía.
func (r *ReportRepository) Delete(id string) (bool, error) {
	if !r.bare {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.reports[id]; !ok {
		return false, nil
	}
	delete(r.s.reports, id)
	return true, nil
}
