package kardex

import (
	"strings"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"golang.org/x/text/cases"
)

// Matches indica si el término aparece, sin distinguir mayúsculas, en el producto,
// las notas, la talla o el tipo del movimiento. Un término vacío coincide con todo.
func Matches(m entity.Movement, term string) bool {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	if needle == "" {
		return true
	}
	for _, field := range []string{string(m.ProductType), m.Notes, string(m.Size), string(m.Type)} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// Filter devuelve los movimientos que coinciden con term, conservando el orden.
func Filter(movements []entity.Movement, term string) []entity.Movement {
	out := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if Matches(m, term) {
			out = append(out, m)
		}
	}
	return out
}
