package dto

import (
	"encoding/json"
	"time"
)

// CreateReportRequest entrada para crear un reporte. Las fechas llegan como
// string (YYYY-MM-DD o RFC 3339) y se convierten a timestamps en el servidor.
type CreateReportRequest struct {
	Type        string          `json:"type" validate:"required"`
	Description string          `json:"description"`
	DateFrom    string          `json:"date_from"`
	DateTo      string          `json:"date_to"`
	Data        json.RawMessage `json:"data"`
}

// ReportResponse salida de un reporte.
type ReportResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	DateFrom    *time.Time      `json:"date_from,omitempty"`
	DateTo      *time.Time      `json:"date_to,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
