package dte

import (
	"errors"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain"
)

// Mensajes de validación visibles al usuario.
const (
	MsgNoItems      = "debe agregar al menos un ítem"
	MsgInvalidItems = "ítems inválidos"
)

var (
	// ErrNoItems la lista de ítems está vacía.
	ErrNoItems = &ValidationError{Field: "items", Message: MsgNoItems}
	// ErrInvalidItems el payload de ítems no tiene la estructura esperada.
	ErrInvalidItems = &ValidationError{Field: "items", Message: MsgInvalidItems}
	// ErrIncompleteProfile el perfil fiscal del emisor no tiene NIT y NRC.
	ErrIncompleteProfile = domain.ErrIncompleteProfile
)

// ValidationError error de validación de datos de entrada; bloquea el cálculo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation informa si err es un error de validación del núcleo.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
