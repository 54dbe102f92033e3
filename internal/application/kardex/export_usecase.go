package kardex

import (
	"context"
	"fmt"
	"time"
)

// ExportUseCase produce los archivos descargables de ambas vistas.
type ExportUseCase struct {
	movements *MovementUseCase
	pdf       SummaryPDFGenerator
	sheet     MovementSheetExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(movements *MovementUseCase, pdf SummaryPDFGenerator, sheet MovementSheetExporter) *ExportUseCase {
	return &ExportUseCase{movements: movements, pdf: pdf, sheet: sheet}
}

// SummaryPDF devuelve el PDF del resumen y un nombre de archivo sugerido.
func (uc *ExportUseCase) SummaryPDF(ctx context.Context) ([]byte, string, error) {
	now := time.Now()
	b, err := uc.pdf.GenerateSummaryPDF(ctx, uc.movements.Summary(), now)
	if err != nil {
		return nil, "", fmt.Errorf("exportar resumen: %w", err)
	}
	return b, "resumo-" + now.Format("20060102") + ".pdf", nil
}

// MovementsSheet devuelve el XLSX del historial filtrado por term.
func (uc *ExportUseCase) MovementsSheet(ctx context.Context, term string) ([]byte, string, error) {
	b, err := uc.sheet.ExportMovements(ctx, uc.movements.Search(term))
	if err != nil {
		return nil, "", fmt.Errorf("exportar historial: %w", err)
	}
	return b, "historico-" + time.Now().Format("20060102") + ".xlsx", nil
}
