package dto

import "github.com/jhoicas/almacen-api/pkg/validate"

// ErrorResponse cuerpo de error HTTP. Errors lista todas las violaciones de
// campo cuando Code es VALIDATION.
type ErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}
