package kardex

import (
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Progress porcentaje producido sobre lo pedido, redondeado y acotado a [0, 100].
// Sin pedido registrado el progreso es 0.
func Progress(r entity.SummaryRow) int {
	if r.TotalOrdered <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(r.TotalProduced)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(r.TotalOrdered))).
		Round(0).
		IntPart()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}
