package entity

import (
	"encoding/json"
	"time"
)

// Report es un registro inerte: etiqueta de tipo, rango de fechas opcional y
// un payload opaco. No tiene lógica derivada ni operación de actualización.
type Report struct {
	ID          string
	Type        string
	Description string
	DateFrom    *time.Time
	DateTo      *time.Time
	Data        json.RawMessage
	CreatedAt   time.Time
}
