package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-textil/internal/application/dto"
	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	apphttp "github.com/jhoicas/kardex-textil/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	doc     []entity.Movement
	failErr error
}

func (s *memStore) Load(context.Context) ([]entity.Movement, error) { return s.doc, nil }

func (s *memStore) Save(_ context.Context, m []entity.Movement) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.doc = append([]entity.Movement(nil), m...)
	return nil
}

type fakePDF struct{}

func (fakePDF) GenerateSummaryPDF(context.Context, appkardex.Report, time.Time) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

type fakeSheet struct{ got []entity.Movement }

func (f *fakeSheet) ExportMovements(_ context.Context, m []entity.Movement) ([]byte, error) {
	f.got = m
	return []byte("PK"), nil
}

func buildTestApp(t *testing.T, store *memStore) (*fiber.App, *fakeSheet) {
	t.Helper()
	uc, err := appkardex.NewMovementUseCase(context.Background(), store, nil)
	require.NoError(t, err)
	sheet := &fakeSheet{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		MovementUC: uc,
		ExportUC:   appkardex.NewExportUseCase(uc, fakePDF{}, sheet),
	})
	return app, sheet
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func create(t *testing.T, app *fiber.App, body string) dto.MovementResponse {
	t.Helper()
	resp, b := doJSON(t, app, http.MethodPost, "/api/movements", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(b))
	var out dto.MovementResponse
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearMovimiento_201YApareceEnResumen(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})

	created := create(t, app, `{"productType":"Camiseta","size":"M","type":"order","quantity":100}`)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(entity.MovementOrder), created.Type)
	create(t, app, `{"productType":"Camiseta","size":"M","type":"Corte (Matéria-prima)","quantity":60}`)
	create(t, app, `{"productType":"camiseta","size":"m","type":"producao","quantity":40}`)

	resp, b := doJSON(t, app, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sum dto.SummaryResponse
	require.NoError(t, json.Unmarshal(b, &sum))
	require.Len(t, sum.Rows, 1)
	assert.Equal(t, 20, sum.Rows[0].CutBalance)
	assert.Equal(t, 60, sum.Rows[0].ShortfallToProduce)
	assert.Equal(t, 40, sum.Rows[0].ShortfallToCut)
	assert.Equal(t, dto.GlobalTotalsDTO{Ordered: 100, Cut: 60, Produced: 40}, sum.Totals)
}

func TestCrearMovimiento_CantidadCero_400ConCampos(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})

	resp, b := doJSON(t, app, http.MethodPost, "/api/movements", `{"productType":"Bermuda","size":"4","type":"order","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(b, &e))
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Fields, "quantity")

	_, b = doJSON(t, app, http.MethodGet, "/api/movements", "")
	var list dto.MovementListResponse
	require.NoError(t, json.Unmarshal(b, &list))
	assert.Zero(t, list.Total, "no se creó ningún movimiento")
}

func TestCrearMovimiento_CantidadSobreElTope_400YResumenIntacto(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})

	resp, b := doJSON(t, app, http.MethodPost, "/api/movements", `{"productType":"Camiseta","size":"M","type":"order","quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(b, &e))
	assert.Equal(t, "max", e.Fields["quantity"])

	create(t, app, `{"productType":"Camiseta","size":"M","type":"order","quantity":2}`)

	_, b = doJSON(t, app, http.MethodGet, "/api/summary", "")
	var sum dto.SummaryResponse
	require.NoError(t, json.Unmarshal(b, &sum))
	require.Len(t, sum.Rows, 1)
	assert.Equal(t, 2, sum.Rows[0].TotalOrdered)
	assert.Equal(t, 2, sum.Rows[0].ShortfallToProduce)
	assert.False(t, sum.Rows[0].Complete)
	assert.Equal(t, 2, sum.Totals.Ordered)
}

func TestCrearMovimiento_CuerpoInvalido(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})
	resp, _ := doJSON(t, app, http.MethodPost, "/api/movements", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditarMovimiento_ConservaIDYFecha(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})
	created := create(t, app, `{"productType":"Camiseta","size":"G","type":"order","quantity":50}`)

	resp, b := doJSON(t, app, http.MethodPut, "/api/movements/"+created.ID, `{"productType":"Camiseta","size":"G","type":"order","quantity":75}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	var updated dto.MovementResponse
	require.NoError(t, json.Unmarshal(b, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.Date.Equal(updated.Date))
	assert.Equal(t, 75, updated.Quantity)
}

func TestEditarYEliminar_IDInexistente_404(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})

	resp, _ := doJSON(t, app, http.MethodPut, "/api/movements/nope", `{"productType":"Bermuda","size":"4","type":"order","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/movements/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/movements/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEliminarMovimiento_204(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})
	created := create(t, app, `{"productType":"Bermuda","size":"8","type":"corte","quantity":3}`)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/movements/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/movements/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListarConBusqueda(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})
	create(t, app, `{"productType":"Bermuda","size":"4","type":"order","quantity":1,"notes":"Tecido azul"}`)
	create(t, app, `{"productType":"Camiseta","size":"GG","type":"order","quantity":1}`)

	_, b := doJSON(t, app, http.MethodGet, "/api/movements?q=AZUL", "")
	var list dto.MovementListResponse
	require.NoError(t, json.Unmarshal(b, &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "AZUL", list.Query)
	assert.Equal(t, "Tecido azul", list.Items[0].Notes)
}

func TestFalloDePersistencia_503(t *testing.T) {
	store := &memStore{}
	app, _ := buildTestApp(t, store)
	store.failErr = errors.New("disco lleno")

	resp, b := doJSON(t, app, http.MethodPost, "/api/movements", `{"productType":"Bermuda","size":"4","type":"order","quantity":1}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(b, &e))
	assert.Equal(t, "PERSISTENCE", e.Code)
}

func TestCatalogo(t *testing.T) {
	app, _ := buildTestApp(t, &memStore{})
	_, b := doJSON(t, app, http.MethodGet, "/api/catalog", "")
	var cat dto.CatalogResponse
	require.NoError(t, json.Unmarshal(b, &cat))
	assert.Equal(t, []string{"Bermuda", "Camiseta"}, cat.ProductTypes)
	assert.Len(t, cat.Sizes, 10)
	require.Len(t, cat.MovementTypes, 3)
	assert.NotEmpty(t, cat.MovementTypes[0].Hint)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestExportaciones(t *testing.T) {
	app, sheet := buildTestApp(t, &memStore{})
	create(t, app, `{"productType":"Bermuda","size":"4","type":"order","quantity":1}`)
	create(t, app, `{"productType":"Camiseta","size":"M","type":"order","quantity":1}`)

	resp, b := doJSON(t, app, http.MethodGet, "/api/exports/summary.pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "resumo-")
	assert.Equal(t, "%PDF-fake", string(b))

	resp, _ = doJSON(t, app, http.MethodGet, "/api/exports/movements.xlsx?q=camiseta", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	require.Len(t, sheet.got, 1, "se exporta el historial filtrado")
	assert.Equal(t, entity.ProductCamiseta, sheet.got[0].ProductType)
}
