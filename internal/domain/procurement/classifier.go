package procurement

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestor-irrigacion/internal/domain"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// Classify devuelve el tipo de contratación que corresponde al monto: el tope
// más bajo cuyo máximo cubre el monto (comparación inclusiva). Si el monto
// supera todos los topes se usa el de máximo más alto.
// Sin topes configurados devuelve domain.ErrConfiguration.
func Classify(amount decimal.Decimal, thresholds []entity.MonetaryThreshold) (string, error) {
	if len(thresholds) == 0 {
		return "", fmt.Errorf("%w: no hay topes de contratación configurados", domain.ErrConfiguration)
	}
	sorted := SortThresholds(thresholds)
	for _, t := range sorted {
		if amount.LessThanOrEqual(t.CeilingAmount) {
			return t.CategoryLabel, nil
		}
	}
	return sorted[len(sorted)-1].CategoryLabel, nil
}

// SortThresholds devuelve una copia ordenada por monto máximo ascendente.
func SortThresholds(thresholds []entity.MonetaryThreshold) []entity.MonetaryThreshold {
	sorted := make([]entity.MonetaryThreshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CeilingAmount.LessThan(sorted[j].CeilingAmount)
	})
	return sorted
}
