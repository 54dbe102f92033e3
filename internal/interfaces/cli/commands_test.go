package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct{ doc []entity.Movement }

func (s *memStore) Load(context.Context) ([]entity.Movement, error) { return s.doc, nil }
func (s *memStore) Save(_ context.Context, m []entity.Movement) error {
	s.doc = append([]entity.Movement(nil), m...)
	return nil
}

func newEnv(t *testing.T) (*Env, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	uc, err := appkardex.NewMovementUseCase(context.Background(), &memStore{}, nil)
	require.NoError(t, err)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &Env{UC: uc, Key: "kardex_movements", Out: out, Err: errOut, Plain: true}, out, errOut
}

func run(t *testing.T, env *Env, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs, env)
}

// ──────────────────────────────────────────────────────────────────────────────
// Subcomandos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddListSummary(t *testing.T) {
	env, out, _ := newEnv(t)

	require.Equal(t, subcommands.ExitSuccess, run(t, env, &addCmd{}, "-p", "Camiseta", "-s", "M", "-t", "order", "-q", "100"))
	require.Equal(t, subcommands.ExitSuccess, run(t, env, &addCmd{}, "-p", "camiseta", "-s", "m", "-t", "corte", "-q", "60", "-n", "lote azul"))
	assert.Len(t, env.UC.List(), 2)

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, env, &listCmd{}, "-q", "AZUL"))
	assert.Contains(t, out.String(), "lote azul")
	assert.Contains(t, out.String(), "1 lançamento(s)")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, env, &summaryCmd{}))
	s := out.String()
	assert.Contains(t, s, "## Camisetas")
	assert.Contains(t, s, "| M | 100 | 40 | 60 | 0 | 100 | 0% |")
}

func TestAdd_CantidadInvalida(t *testing.T) {
	env, _, errOut := newEnv(t)
	status := run(t, env, &addCmd{}, "-p", "Bermuda", "-s", "4", "-t", "order", "-q", "0")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut.String(), "quantity")
	assert.Empty(t, env.UC.List())
}

func TestEdit_SoloCamposIndicados(t *testing.T) {
	env, _, _ := newEnv(t)
	require.Equal(t, subcommands.ExitSuccess, run(t, env, &addCmd{}, "-p", "Bermuda", "-s", "G", "-t", "order", "-q", "50", "-n", "original"))
	id := env.UC.List()[0].ID

	require.Equal(t, subcommands.ExitSuccess, run(t, env, &editCmd{}, "-q", "75", id))

	m, err := env.UC.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 75, m.Quantity)
	assert.Equal(t, "original", m.Notes)
	assert.Equal(t, entity.Size("G"), m.Size)
}

func TestRm_IDInexistente(t *testing.T) {
	env, _, errOut := newEnv(t)
	assert.Equal(t, subcommands.ExitFailure, run(t, env, &rmCmd{}, "nope"))
	assert.Contains(t, errOut.String(), "no encontrado")
	assert.Equal(t, subcommands.ExitUsageError, run(t, env, &rmCmd{}))
}

func TestImport_DesdeArchivo(t *testing.T) {
	env, out, _ := newEnv(t)
	path := filepath.Join(t.TempDir(), "dump.json")
	dump := `{"kardex_movements":"[{\"id\":\"id-1\",\"date\":\"2024-05-31T15:28:37.171Z\",\"productType\":\"Camiseta\",\"size\":\"GG\",\"type\":\"Corte (Matéria-prima)\",\"quantity\":12}]","otra":"x"}`
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o600))

	require.Equal(t, subcommands.ExitSuccess, run(t, env, &importCmd{}, path))
	assert.Contains(t, out.String(), "1 lançamento(s) importado(s), 0 omitido(s)")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, env, &importCmd{}, path))
	assert.Contains(t, out.String(), "0 lançamento(s) importado(s), 1 omitido(s)")
	assert.Len(t, env.UC.List(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Volcados y markdown
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeDump_Formatos(t *testing.T) {
	arr := `[{"id":"a","date":"2024-01-01T00:00:00Z","productType":"Bermuda","size":"4","type":"Pedido (Meta)","quantity":1}]`

	m, err := DecodeDump(strings.NewReader(arr), "k")
	require.NoError(t, err)
	require.Len(t, m, 1)

	m, err = DecodeDump(strings.NewReader(`{"k":`+arr+`}`), "k")
	require.NoError(t, err)
	require.Len(t, m, 1)

	_, err = DecodeDump(strings.NewReader(`{"otra":"[]"}`), "k")
	assert.Error(t, err)

	m, err = DecodeDump(strings.NewReader("  "), "k")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSummaryMarkdown_SinDatos(t *testing.T) {
	md := SummaryMarkdown(appkardex.Report{})
	assert.Contains(t, md, "Nenhum dado disponível")
}

func TestSummaryMarkdown_SubtotalesYMarcadores(t *testing.T) {
	report := appkardex.BuildReport([]entity.Movement{
		{ID: "1", ProductType: entity.ProductBermuda, Size: "G", Type: entity.MovementProduced, Quantity: 30},
		{ID: "2", ProductType: entity.ProductBermuda, Size: "G", Type: entity.MovementCut, Quantity: 10},
	})
	md := SummaryMarkdown(report)
	assert.Contains(t, md, "| G | 0 | OK | -20 | 30 | CONCLUÍDO | 0% |")
	assert.Contains(t, md, "| **TOTAL** | **0** | **0** | **-20** | **30** | **0** | |")
}

func TestMovementsMarkdown_EscapaBarras(t *testing.T) {
	md := MovementsMarkdown([]entity.Movement{
		{ID: "x", ProductType: entity.ProductBermuda, Size: "4", Type: entity.MovementOrder, Quantity: 1, Notes: "a|b"},
	}, "")
	assert.Contains(t, md, `a\|b`)
}

func TestPrintMarkdown_Renderizado(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMarkdown(&buf, "# Título\n", false))
	assert.Contains(t, buf.String(), "Título")
}
