package kardex

import (
	"github.com/jhoicas/kardex-textil/internal/application/dto"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	domainkardex "github.com/jhoicas/kardex-textil/internal/domain/kardex"
)

// Report resultado de la conciliación listo para presentar.
type Report struct {
	Rows     []entity.SummaryRow
	Products []entity.ProductSubtotals
	Totals   entity.GlobalTotals
}

// BuildReport concilia la lista de movimientos.
func BuildReport(movements []entity.Movement) Report {
	rows, totals := domainkardex.Reconcile(movements)
	return Report{
		Rows:     rows,
		Products: domainkardex.Subtotals(rows),
		Totals:   totals,
	}
}

// Summary recalcula la vista sintética sobre el estado actual.
func (uc *MovementUseCase) Summary() Report {
	return BuildReport(uc.List())
}

// ToSummaryResponse adapta el reporte a la respuesta HTTP.
func ToSummaryResponse(r Report) dto.SummaryResponse {
	out := dto.SummaryResponse{
		Rows:     make([]dto.SummaryRowDTO, 0, len(r.Rows)),
		Products: make([]dto.ProductSubtotalsDTO, 0, len(r.Products)),
		Totals: dto.GlobalTotalsDTO{
			Ordered:  r.Totals.Ordered,
			Cut:      r.Totals.Cut,
			Produced: r.Totals.Produced,
		},
	}
	for _, row := range r.Rows {
		out.Rows = append(out.Rows, dto.SummaryRowDTO{
			ProductType:        string(row.ProductType),
			Size:               string(row.Size),
			TotalOrdered:       row.TotalOrdered,
			TotalCut:           row.TotalCut,
			TotalProduced:      row.TotalProduced,
			CutBalance:         row.CutBalance,
			ShortfallToProduce: row.ShortfallToProduce,
			ShortfallToCut:     row.ShortfallToCut,
			Progress:           domainkardex.Progress(row),
			Complete:           row.Complete(),
		})
	}
	for _, p := range r.Products {
		out.Products = append(out.Products, dto.ProductSubtotalsDTO{
			ProductType:        string(p.ProductType),
			TotalOrdered:       p.TotalOrdered,
			TotalCut:           p.TotalCut,
			TotalProduced:      p.TotalProduced,
			CutBalance:         p.CutBalance,
			ShortfallToProduce: p.ShortfallToProduce,
			ShortfallToCut:     p.ShortfallToCut,
		})
	}
	return out
}

// ToMovementResponse adapta un movimiento a la respuesta HTTP.
func ToMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		ProductType: string(m.ProductType),
		Size:        string(m.Size),
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Notes:       m.Notes,
	}
}

// Catalog enumeraciones en orden declarado.
func Catalog() dto.CatalogResponse {
	out := dto.CatalogResponse{}
	for _, p := range entity.ProductTypes {
		out.ProductTypes = append(out.ProductTypes, string(p))
	}
	for _, s := range entity.Sizes {
		out.Sizes = append(out.Sizes, string(s))
	}
	for _, t := range entity.MovementTypes {
		out.MovementTypes = append(out.MovementTypes, dto.MovementTypeOption{Value: string(t), Hint: t.Hint()})
	}
	return out
}
