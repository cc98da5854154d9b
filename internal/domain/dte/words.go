package dte

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToWords convierte un monto en dólares a su representación legal en letras.
// Ejemplos: 0 → "CERO 00/100 DOLARES", 21 → "VEINTE Y UN 00/100 DOLARES",
// 1000 → "MIL 00/100 DOLARES". Los montos negativos se expresan por su valor absoluto.
func AmountToWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	integer := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(integer)).Mul(hundred).IntPart()
	return fmt.Sprintf("%s %02d/100 DOLARES", IntegerToWords(integer), cents)
}

// IntegerToWords convierte un entero no negativo a palabras en mayúsculas y sin tildes.
// El uno se apocopa siempre ("UN"), tal como se usa antes de "DOLARES", "MIL" o "MILLONES".
func IntegerToWords(n int64) string {
	if n <= 0 {
		return "CERO"
	}
	var parts []string
	if millions := n / 1_000_000; millions > 0 {
		if millions == 1 {
			parts = append(parts, "UN MILLON")
		} else {
			parts = append(parts, IntegerToWords(millions)+" MILLONES")
		}
		n %= 1_000_000
	}
	if thousands := n / 1000; thousands > 0 {
		if thousands == 1 {
			parts = append(parts, "MIL")
		} else {
			parts = append(parts, hundredsToWords(int(thousands))+" MIL")
		}
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, hundredsToWords(int(n)))
	}
	return strings.Join(parts, " ")
}

var (
	unitWords = [...]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	teenWords = [...]string{
		"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE",
		"DIECISEIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE",
	}
	tenWords     = [...]string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	hundredWords = [...]string{
		"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS",
		"SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
	}
)

// hundredsToWords cubre 1..999.
func hundredsToWords(n int) string {
	if n == 100 {
		return "CIEN"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundredWords[h])
	}
	if rest := n % 100; rest > 0 {
		parts = append(parts, tensToWords(rest))
	}
	return strings.Join(parts, " ")
}

// tensToWords cubre 1..99.
func tensToWords(n int) string {
	switch {
	case n < 10:
		return unitWords[n]
	case n < 20:
		return teenWords[n-10]
	case n%10 == 0:
		return tenWords[n/10]
	default:
		return tenWords[n/10] + " Y " + unitWords[n%10]
	}
}
