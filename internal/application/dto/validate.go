package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/punto-bazar-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica los tags `validate` del request. Cualquier falla se traduce a un
// domain.ValidationError con msg, que es el texto que ve el operador.
func Validate(in any, msg string) error {
	if err := validate.Struct(in); err != nil {
		return domain.NewValidationError(msg)
	}
	return nil
}
