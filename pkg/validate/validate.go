// Package validate valida structs de entrada y devuelve la lista completa de
// violaciones por campo, no solo la primera.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los campos con su nombre JSON, no el del struct Go
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// FieldError describe una violación de una regla sobre un campo.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Struct valida s y devuelve todas las violaciones encontradas.
// Devuelve nil si la entrada es válida.
func Struct(s interface{}) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo '%s' es requerido", fe.Field())
	case "oneof":
		return fmt.Sprintf("el campo '%s' debe ser uno de: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("el campo '%s' no alcanza el mínimo %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("el campo '%s' excede el máximo %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("el campo '%s' no cumple la regla '%s'", fe.Field(), fe.Tag())
	}
}
