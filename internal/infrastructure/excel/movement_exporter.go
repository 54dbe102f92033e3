// Package excel exporta el historial de movimientos (vista analítica) a XLSX.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

const sheetName = "Histórico"

var headings = []string{"Data", "Produto", "Tamanho", "Tipo", "Quantidade", "Observações", "ID"}

var _ appkardex.MovementSheetExporter = (*MovementExporter)(nil)

// MovementExporter implementa kardex.MovementSheetExporter con excelize.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter {
	return &MovementExporter{}
}

// ExportMovements escribe una fila por movimiento en el orden recibido (más reciente primero).
func (e *MovementExporter) ExportMovements(_ context.Context, movements []entity.Movement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4F46E5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo encabezado: %w", err)
	}
	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22}) // d/m/yy h:mm
	if err != nil {
		return nil, fmt.Errorf("excel: estilo fecha: %w", err)
	}

	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: encabezado %s: %w", h, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headings), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, header); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, m := range movements {
		row := i + 2
		values := []interface{}{m.Date, string(m.ProductType), string(m.Size), string(m.Type), m.Quantity, m.Notes, m.ID}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", row, err)
			}
		}
	}
	if len(movements) > 0 {
		end, _ := excelize.CoordinatesToCellName(1, len(movements)+1)
		if err := f.SetCellStyle(sheetName, "A2", end, dateStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo fecha: %w", err)
		}
	}
	_ = f.SetColWidth(sheetName, "A", "A", 18)
	_ = f.SetColWidth(sheetName, "D", "D", 24)
	_ = f.SetColWidth(sheetName, "F", "F", 40)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
