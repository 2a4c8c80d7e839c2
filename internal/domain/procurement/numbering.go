package procurement

import (
	"fmt"
	"strconv"
	"strings"
)

// NextOrderNumber calcula el número de OC siguiente con formato "NN/YYYY".
//
//	NextOrderNumber("", 2026)        -> "01/2026"
//	NextOrderNumber("15/2026", 2026) -> "16/2026"
//	NextOrderNumber("15/2025", 2026) -> "01/2026"
//
// Un número anterior mal formado reinicia la serie en "01/YYYY": el número es
// de presentación y el orden real lo da el pedido_nro.
func NextOrderNumber(last string, year int) string {
	number, lastYear, ok := ParseOrderNumber(last)
	if !ok || lastYear != year {
		return FormatOrderNumber(1, year)
	}
	return FormatOrderNumber(number+1, year)
}

// ParseOrderNumber separa "NN/YYYY" en número y año.
func ParseOrderNumber(s string) (number, year int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, 0, false
	}
	number, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || number < 0 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return number, year, true
}

// FormatOrderNumber arma "NN/YYYY" con el número rellenado a dos dígitos.
func FormatOrderNumber(number, year int) string {
	return fmt.Sprintf("%02d/%d", number, year)
}

// NextSequenceIndex devuelve el pedido_nro siguiente al máximo emitido (1 si no hay ninguno).
// No se reinicia con el año.
func NextSequenceIndex(maxIssued int64) int64 {
	if maxIssued < 0 {
		maxIssued = 0
	}
	return maxIssued + 1
}
