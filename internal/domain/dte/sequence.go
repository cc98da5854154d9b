package dte

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Valores por defecto de establecimiento y punto de venta.
const (
	DefaultCodEstable    = "0001"
	DefaultCodPuntoVenta = "001"
)

// SequenceIdentifier número de control y código de generación de un DTE.
type SequenceIdentifier struct {
	Sequence         int64
	NumeroControl    string
	CodigoGeneracion string
}

// ControlNumber arma el número de control DTE-<tipo>-<estable>-<pos>-<correlativo>.
// El correlativo es priorCount+1 con 15 dígitos. Establecimiento y punto de venta
// se rellenan con ceros a la izquierda; vacíos toman 0001/001.
func ControlNumber(t DocumentType, codEstable, codPuntoVenta string, priorCount int64) string {
	if priorCount < 0 {
		priorCount = 0
	}
	return fmt.Sprintf("DTE-%s-%s-%s-%015d",
		t.Code(),
		padCode(codEstable, 4, DefaultCodEstable),
		padCode(codPuntoVenta, 3, DefaultCodPuntoVenta),
		priorCount+1,
	)
}

// NewGenerationCode genera un UUID v4 en mayúsculas.
func NewGenerationCode() string {
	return strings.ToUpper(uuid.NewString())
}

// NewSequenceIdentifier combina número de control y código de generación.
func NewSequenceIdentifier(t DocumentType, codEstable, codPuntoVenta string, priorCount int64) SequenceIdentifier {
	if priorCount < 0 {
		priorCount = 0
	}
	return SequenceIdentifier{
		Sequence:         priorCount + 1,
		NumeroControl:    ControlNumber(t, codEstable, codPuntoVenta, priorCount),
		CodigoGeneracion: NewGenerationCode(),
	}
}

func padCode(code string, width int, def string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def
	}
	if len(code) >= width {
		return code[len(code)-width:]
	}
	return strings.Repeat("0", width-len(code)) + code
}
