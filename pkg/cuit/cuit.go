package cuit

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito verificador (AFIP), aplicados a los 10
// primeros dígitos de izquierda a derecha.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// prefijos de tipo admitidos (personas humanas y jurídicas).
var validPrefixes = map[string]bool{
	"20": true, "23": true, "24": true, "27": true,
	"30": true, "33": true, "34": true,
}

// Validate verifica longitud, prefijo y dígito verificador (módulo 11).
// cuit puede ser "20-12345678-6", "20.12345678.6" o "20123456786".
func Validate(cuit string) error {
	digits := extractDigits(cuit)
	if len(digits) != 11 {
		return fmt.Errorf("cuit: debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if !validPrefixes[string(digits[:2])] {
		return fmt.Errorf("cuit: prefijo %s inválido", string(digits[:2]))
	}
	expected, err := ComputeCheckDigit(string(digits[:10]))
	if err != nil {
		return err
	}
	if digits[10] != expected {
		return fmt.Errorf("cuit: dígito verificador inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeCheckDigit calcula el dígito verificador para los 10 primeros dígitos.
// Si el resultado es 10 no existe CUIT válido con esa base.
func ComputeCheckDigit(base string) (byte, error) {
	digits := extractDigits(base)
	if len(digits) < 10 {
		return 0, fmt.Errorf("cuit: se requieren 10 dígitos para calcular el verificador, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:10] {
		sum += int(d-'0') * cuitWeights[i]
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return '0', nil
	case 10:
		return 0, fmt.Errorf("cuit: la base %s no admite dígito verificador", string(digits[:10]))
	default:
		return byte('0' + check), nil
	}
}

// Normalize valida el CUIT y lo devuelve con formato "XX-XXXXXXXX-X".
func Normalize(cuit string) (string, error) {
	if err := Validate(cuit); err != nil {
		return "", err
	}
	d := extractDigits(cuit)
	return fmt.Sprintf("%s-%s-%s", d[:2], d[2:10], d[10:]), nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
