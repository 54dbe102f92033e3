package kardex

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

// SummaryPDFGenerator genera el PDF de la vista sintética.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, report Report, generatedAt time.Time) ([]byte, error)
}

// MovementSheetExporter genera la hoja de cálculo del historial detallado.
type MovementSheetExporter interface {
	ExportMovements(ctx context.Context, movements []entity.Movement) ([]byte, error)
}
