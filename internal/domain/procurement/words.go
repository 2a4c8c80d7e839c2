// Package procurement contiene las reglas de negocio de las Órdenes de Compra:
// monto en letras, tipo de contratación según topes, totales con IVA y
// numeración correlativa. Son funciones puras, sin acceso a almacenamiento.
package procurement

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
)

// MaxWordsAmount es la mayor parte entera que se puede expresar en letras.
const MaxWordsAmount = 999_999_999

var (
	unidades   = [10]string{"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}
	decenas    = [10]string{"", "diez", "veinte", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	especiales = [10]string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve"}
	centenas   = [10]string{"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos"}
)

// AmountToWords convierte un monto en pesos a la leyenda de los documentos oficiales:
//
//	228000.00 -> "DOSCIENTOS VEINTIOCHO MIL PESOS CON 00/100.-"
//	1.50      -> "UN PESO CON 50/100.-"
//
// El monto se redondea a centavos antes de separar parte entera y centavos.
// Devuelve domain.ErrNumericRange si es negativo o si la parte entera supera MaxWordsAmount.
func AmountToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: %s es negativo", domain.ErrNumericRange, amount.String())
	}
	cents := amount.Round(2)
	integer := cents.Truncate(0)
	if integer.GreaterThan(decimal.NewFromInt(MaxWordsAmount)) {
		return "", fmt.Errorf("%w: %s supera %d", domain.ErrNumericRange, integer.String(), MaxWordsAmount)
	}
	n := integer.IntPart()
	c := cents.Sub(integer).Shift(2).IntPart()

	if n == 1 {
		return fmt.Sprintf("UN PESO CON %02d/100.-", c), nil
	}
	words, err := IntegerToWords(n)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s PESOS CON %02d/100.-", cases.Upper(language.Spanish).String(words), c), nil
}

// IntegerToWords devuelve el número en letras minúsculas ("cero" para 0).
func IntegerToWords(n int64) (string, error) {
	if n < 0 || n > MaxWordsAmount {
		return "", fmt.Errorf("%w: %d", domain.ErrNumericRange, n)
	}
	if n == 0 {
		return "cero", nil
	}
	return spell(n), nil
}

// spell asume 1 <= n <= MaxWordsAmount.
func spell(n int64) string {
	switch {
	case n < 10:
		return unidades[n]
	case n < 20:
		return especiales[n-10]
	case n < 100:
		d, u := n/10, n%10
		if u == 0 {
			return decenas[d]
		}
		if d == 2 {
			return "veinti" + unidades[u]
		}
		return decenas[d] + " y " + unidades[u]
	case n == 100:
		return "cien"
	case n < 1000:
		c, resto := n/100, n%100
		if resto == 0 {
			return centenas[c]
		}
		return centenas[c] + " " + spell(resto)
	case n < 1_000_000:
		return compose(n/1000, n%1000, "mil", " mil")
	default:
		return compose(n/1_000_000, n%1_000_000, "un millón", " millones")
	}
}

// compose arma "<grupo><sufijo> <resto>"; si el grupo es 1 usa singular tal cual.
func compose(group, rest int64, singular, suffix string) string {
	head := singular
	if group != 1 {
		head = spell(group) + suffix
	}
	if rest == 0 {
		return head
	}
	return head + " " + spell(rest)
}
