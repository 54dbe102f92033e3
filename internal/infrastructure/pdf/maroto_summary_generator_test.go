package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

func TestGenerateSummaryPDF(t *testing.T) {
	report := appkardex.BuildReport([]entity.Movement{
		{ID: "1", ProductType: entity.ProductCamiseta, Size: "M", Type: entity.MovementOrder, Quantity: 100},
		{ID: "2", ProductType: entity.ProductCamiseta, Size: "M", Type: entity.MovementCut, Quantity: 60},
		{ID: "3", ProductType: entity.ProductBermuda, Size: "G", Type: entity.MovementProduced, Quantity: 30},
	})

	b, err := NewMarotoSummaryGenerator("").GenerateSummaryPDF(context.Background(), report, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateSummaryPDF_SinDatos(t *testing.T) {
	b, err := NewMarotoSummaryGenerator("Kardex").GenerateSummaryPDF(context.Background(), appkardex.Report{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "25.000", formatInt(25000))
	assert.Equal(t, "1.000.000", formatInt(1000000))
	assert.Equal(t, "-1.200", formatInt(-1200))
	assert.Equal(t, "-20", formatInt(-20))
}
