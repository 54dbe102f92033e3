package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	domainkardex "github.com/jhoicas/kardex-textil/internal/domain/kardex"
)

// MovementsMarkdown tabla del historial (más reciente primero).
func MovementsMarkdown(movements []entity.Movement, term string) string {
	var b strings.Builder
	b.WriteString("# Histórico de Lançamentos\n\n")
	if term != "" {
		fmt.Fprintf(&b, "Filtro: `%s`\n\n", term)
	}
	if len(movements) == 0 {
		b.WriteString("_Nenhum lançamento encontrado._\n")
		return b.String()
	}
	b.WriteString("| Data | Produto | Tam. | Tipo | Qtd. | Obs. | ID |\n")
	b.WriteString("|---|---|---|---|---:|---|---|\n")
	for _, m := range movements {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | `%s` |\n",
			m.Date.Local().Format("02/01/2006 15:04"),
			m.ProductType, m.Size, m.Type, m.Quantity, escapeCell(m.Notes), m.ID)
	}
	fmt.Fprintf(&b, "\n%d lançamento(s)\n", len(movements))
	return b.String()
}

// SummaryMarkdown vista sintética: una tabla por producto con su fila de totales.
func SummaryMarkdown(r appkardex.Report) string {
	var b strings.Builder
	b.WriteString("# Resumo por Tamanho\n\n")
	fmt.Fprintf(&b, "**Pedidos:** %d · **Cortado:** %d · **Produzido:** %d\n\n",
		r.Totals.Ordered, r.Totals.Cut, r.Totals.Produced)
	if len(r.Rows) == 0 {
		b.WriteString("_Nenhum dado disponível._\n")
		return b.String()
	}
	for _, sub := range r.Products {
		fmt.Fprintf(&b, "## %ss\n\n", sub.ProductType)
		b.WriteString("| Tamanho | Qtd. Pedido | Falta Cortar | Saldo em Corte | Qtd. Produzida | Falta Produzir | % |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
		for _, row := range r.Rows {
			if row.ProductType != sub.ProductType {
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | %s | %d | %d | %s | %d%% |\n",
				row.Size, row.TotalOrdered,
				shortfall(row.ShortfallToCut, "OK"),
				row.CutBalance, row.TotalProduced,
				shortfall(row.ShortfallToProduce, "CONCLUÍDO"),
				domainkardex.Progress(row))
		}
		fmt.Fprintf(&b, "| **TOTAL** | **%d** | **%d** | **%d** | **%d** | **%d** | |\n\n",
			sub.TotalOrdered, sub.ShortfallToCut, sub.CutBalance, sub.TotalProduced, sub.ShortfallToProduce)
	}
	return b.String()
}

func shortfall(v int, done string) string {
	if v == 0 {
		return done
	}
	return fmt.Sprintf("%d", v)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// printMarkdown renderiza md para la terminal; con plain escribe el markdown sin procesar.
func printMarkdown(w io.Writer, md string, plain bool) error {
	if plain {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("renderizar markdown: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("renderizar markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
