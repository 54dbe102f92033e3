// Package pdf genera la versión imprimible de la vista sintética (resumen por talla).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kardex Têxtil               │  Fecha de generación │
//	│  TOTALES: Pedidos | Cortado | Producido                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por producto:                                              │
//	│    TABLA: Talla | Pedido | Falta cortar | Saldo corte |     │
//	│           Producido | Falta producir | %                    │
//	│    PIE: Total <producto>                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	domainkardex "github.com/jhoicas/kardex-textil/internal/domain/kardex"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorFooter  = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorGreen   = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ appkardex.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// MarotoSummaryGenerator implementa kardex.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct {
	title string
}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator(title string) *MarotoSummaryGenerator {
	if title == "" {
		title = "Kardex Têxtil"
	}
	return &MarotoSummaryGenerator{title: title}
}

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(_ context.Context, report appkardex.Report, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title+" - Resumo por Tamanho", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(totalsRow(report.Totals))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Rows) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Nenhum dado disponível", props.Text{Size: 10, Align: align.Center, Top: 4, Color: colorGray}),
		)))
	}

	for _, sub := range report.Products {
		m.AddRows(productTitleRow(sub.ProductType))
		m.AddRows(tableHeaderRow())
		for _, r := range report.Rows {
			if r.ProductType == sub.ProductType {
				m.AddRows(detailRow(r))
			}
		}
		m.AddRows(subtotalRow(sub))
		m.AddRows(line.NewRow(4))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Resumo por Tamanho", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// totalsRow: las tres tarjetas de totales generales.
func totalsRow(t entity.GlobalTotals) core.Row {
	card := func(label string, v int) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(formatInt(v), props.Text{Style: fontstyle.Bold, Size: 14, Top: 5}),
		)
	}
	return row.New(14).Add(
		card("TOTAL PEDIDOS", t.Ordered),
		card("TOTAL CORTADO", t.Cut),
		card("TOTAL PRODUZIDO", t.Produced),
	)
}

func productTitleRow(p entity.ProductType) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(string(p)+"s", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Tamanho", 1, align.Left),
		h("Qtd. Pedido", 2, align.Right),
		h("Falta Cortar", 2, align.Right),
		h("Saldo em Corte", 2, align.Right),
		h("Qtd. Produzida", 2, align.Right),
		h("Falta Produzir", 2, align.Right),
		h("%", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func detailRow(r entity.SummaryRow) core.Row {
	cell := func(s string, size int, color *props.Color, bold bool) core.Col {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color, Style: style,
		}))
	}
	shortfall := func(v int, done string) (string, *props.Color) {
		if v == 0 {
			return done, colorGreen
		}
		return formatInt(v), colorRed
	}
	cutText, cutColor := shortfall(r.ShortfallToCut, "OK")
	prodText, prodColor := shortfall(r.ShortfallToProduce, "CONCLUÍDO")

	return row.New(6).Add(
		col.New(1).Add(text.New(string(r.Size), props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
		cell(formatInt(r.TotalOrdered), 2, nil, false),
		cell(cutText, 2, cutColor, true),
		cell(formatInt(r.CutBalance), 2, nil, false),
		cell(formatInt(r.TotalProduced), 2, colorGreen, false),
		cell(prodText, 2, prodColor, true),
		cell(strconv.Itoa(domainkardex.Progress(r))+"%", 1, colorGray, false),
	)
}

// subtotalRow: pie azul con los totales del producto.
func subtotalRow(s entity.ProductSubtotals) core.Row {
	v := func(n int, size int) core.Col {
		return col.New(size).Add(text.New(formatInt(n), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1, Color: colorWhite,
		}))
	}
	return row.New(8).Add(
		col.New(1).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 7, Top: 2, Left: 1, Color: colorWhite})),
		v(s.TotalOrdered, 2),
		v(s.ShortfallToCut, 2),
		v(s.CutBalance, 2),
		v(s.TotalProduced, 2),
		v(s.ShortfallToProduce, 2),
		col.New(1),
	).WithStyle(&props.Cell{BackgroundColor: colorFooter})
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatInt inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatInt(v int) string {
	s := strconv.Itoa(v)
	sign := ""
	if v < 0 {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
