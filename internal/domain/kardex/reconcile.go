// Package kardex contiene la conciliación pedido → corte → producción (servicio de dominio puro).
package kardex

import "github.com/jhoicas/kardex-textil/internal/domain/entity"

type pairKey struct {
	product entity.ProductType
	size    entity.Size
}

type tally struct {
	ordered, cut, produced int
}

func (t *tally) add(m entity.Movement) {
	switch m.Type {
	case entity.MovementOrder:
		t.ordered += m.Quantity
	case entity.MovementCut:
		t.cut += m.Quantity
	case entity.MovementProduced:
		t.produced += m.Quantity
	}
}

// Reconcile calcula las filas resumen por (producto, talla) y los totales globales.
//
// Las filas siguen el producto cartesiano fijo entity.ProductTypes × entity.Sizes
// (producto mayor, talla menor) y solo se emiten las combinaciones con actividad.
// Los totales globales se acumulan sobre la lista completa, sin agrupar.
// Función total: la lista vacía produce cero filas y totales en cero.
func Reconcile(movements []entity.Movement) ([]entity.SummaryRow, entity.GlobalTotals) {
	var totals tally
	byPair := make(map[pairKey]*tally)
	for _, m := range movements {
		totals.add(m)
		k := pairKey{product: m.ProductType, size: m.Size}
		t, ok := byPair[k]
		if !ok {
			t = &tally{}
			byPair[k] = t
		}
		t.add(m)
	}

	rows := make([]entity.SummaryRow, 0, len(byPair))
	for _, p := range entity.ProductTypes {
		for _, s := range entity.Sizes {
			t, ok := byPair[pairKey{product: p, size: s}]
			if !ok || (t.ordered == 0 && t.cut == 0 && t.produced == 0) {
				continue
			}
			rows = append(rows, entity.SummaryRow{
				ProductType:        p,
				Size:               s,
				TotalOrdered:       t.ordered,
				TotalCut:           t.cut,
				TotalProduced:      t.produced,
				CutBalance:         t.cut - t.produced,
				ShortfallToProduce: max(0, t.ordered-t.produced),
				ShortfallToCut:     max(0, t.ordered-t.cut),
			})
		}
	}

	return rows, entity.GlobalTotals{
		Ordered:  totals.ordered,
		Cut:      totals.cut,
		Produced: totals.produced,
	}
}

// Subtotals agrupa las filas por producto en el orden en que aparecen.
func Subtotals(rows []entity.SummaryRow) []entity.ProductSubtotals {
	var out []entity.ProductSubtotals
	index := make(map[entity.ProductType]int)
	for _, r := range rows {
		i, ok := index[r.ProductType]
		if !ok {
			i = len(out)
			index[r.ProductType] = i
			out = append(out, entity.ProductSubtotals{ProductType: r.ProductType})
		}
		s := &out[i]
		s.TotalOrdered += r.TotalOrdered
		s.TotalCut += r.TotalCut
		s.TotalProduced += r.TotalProduced
		s.CutBalance += r.CutBalance
		s.ShortfallToProduce += r.ShortfallToProduce
		s.ShortfallToCut += r.ShortfallToCut
	}
	return out
}
