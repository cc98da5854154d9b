package hacienda

import (
	"fmt"
	"unicode"
)

// DigitsOnly elimina guiones, espacios y cualquier carácter no numérico.
// "0614-010101-101-0" → "06140101011010".
func DigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// NormalizeNIT devuelve el NIT sin separadores, tal como lo exige el esquema DTE.
func NormalizeNIT(nit string) string {
	return DigitsOnly(nit)
}

// NormalizeNRC devuelve el NRC sin separadores ("100001-1" → "1000011").
func NormalizeNRC(nrc string) string {
	return DigitsOnly(nrc)
}

// ValidNIT acepta NIT de 14 dígitos o DUI homologado de 9 dígitos.
func ValidNIT(nit string) bool {
	n := len(DigitsOnly(nit))
	return n == 14 || n == 9
}

// ValidNRC acepta entre 1 y 8 dígitos.
func ValidNRC(nrc string) bool {
	n := len(DigitsOnly(nrc))
	return n >= 1 && n <= 8
}

// ValidateDUI comprueba el dígito verificador del DUI (módulo 10 con pesos 9..2).
// doc puede venir como "04567890-1" o "045678901".
func ValidateDUI(doc string) error {
	digits := DigitsOnly(doc)
	if len(digits) != 9 {
		return fmt.Errorf("hacienda: DUI debe tener 9 dígitos, se encontraron %d", len(digits))
	}
	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(digits[i]-'0') * (9 - i)
	}
	expected := (10 - sum%10) % 10
	if int(digits[8]-'0') != expected {
		return fmt.Errorf("hacienda: dígito verificador del DUI inválido: esperado %d, recibido %c", expected, digits[8])
	}
	return nil
}
