package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-sv/internal/domain/dte"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores nombran el campo como lo ve el cliente (tag json).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// errBadBody marca un cuerpo que no se pudo decodificar.
var errBadBody = errors.New("cuerpo inválido")

// bind decodifica el cuerpo en dst y aplica sus reglas `validate`.
// El primer campo inválido sale como *dte.ValidationError.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errBadBody
	}
	err := validate.Struct(dst)
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return &dte.ValidationError{Field: fe.Field(), Message: ruleMessage(fe)}
	}
	return err
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "no es un correo válido"
	case "uuid":
		return "no es un UUID"
	case "min":
		return fmt.Sprintf("mínimo %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("máximo %s caracteres", fe.Param())
	case "len":
		return fmt.Sprintf("debe tener %s caracteres", fe.Param())
	case "oneof":
		return "valores permitidos: " + fe.Param()
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

// respondBind responde 400 con INVALID_BODY o VALIDATION según el fallo de bind.
func respondBind(c *fiber.Ctx, err error) error {
	if errors.Is(err, errBadBody) {
		return badBody(c)
	}
	return respondError(c, err)
}
