// Package cli subcomandos de terminal sobre el mismo caso de uso y store que la API.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/kardex-textil/internal/application/dto"
	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain"
)

// Env lo que cada subcomando recibe como primer argumento de Execute.
type Env struct {
	UC    *appkardex.MovementUseCase
	Key   string    // clave del documento, usada por import
	Out   io.Writer // salida de tablas; por defecto os.Stdout
	Err   io.Writer // mensajes de error; por defecto os.Stderr
	Plain bool      // markdown sin renderizar
}

// Register registra los subcomandos.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "movimientos")
	c.Register(&editCmd{}, "movimientos")
	c.Register(&rmCmd{}, "movimientos")
	c.Register(&importCmd{}, "movimientos")
	c.Register(&listCmd{}, "vistas")
	c.Register(&summaryCmd{}, "vistas")
}

func envFrom(args []interface{}) *Env {
	for _, a := range args {
		if e, ok := a.(*Env); ok {
			if e.Out == nil {
				e.Out = os.Stdout
			}
			if e.Err == nil {
				e.Err = os.Stderr
			}
			return e
		}
	}
	return nil
}

func fail(env *Env, err error) subcommands.ExitStatus {
	var verr *appkardex.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintf(env.Err, "Datos inválidos: %v\n", verr.Fields)
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(env.Err, "Movimiento no encontrado.")
	default:
		fmt.Fprintf(env.Err, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}

// ── add ───────────────────────────────────────────────────────────────────────

type movementFlags struct {
	product  string
	size     string
	kind     string
	quantity int
	notes    string
}

func (m *movementFlags) set(f *flag.FlagSet) {
	f.StringVar(&m.product, "p", "", "Produto (Bermuda, Camiseta).")
	f.StringVar(&m.size, "s", "", "Tamanho (4 6 8 10 12 P M G GG XG).")
	f.StringVar(&m.kind, "t", "", "Tipo: order|cut|produced (o el valor completo).")
	f.IntVar(&m.quantity, "q", 0, "Quantidade (entero positivo).")
	f.StringVar(&m.notes, "n", "", "Observações.")
}

func (m *movementFlags) request() dto.MovementRequest {
	return dto.MovementRequest{ProductType: m.product, Size: m.size, Type: m.kind, Quantity: m.quantity, Notes: m.notes}
}

type addCmd struct{ movementFlags }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "registra un movimiento (pedido, corte o producción)" }
func (*addCmd) Usage() string {
	return `kardex add -p <produto> -s <tamanho> -t <tipo> -q <quantidade> [-n <obs>]

  Registra un movimiento nuevo con id y fecha actuales.

$ kardex add -p Camiseta -s M -t order -q 100
`
}
func (c *addCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	fields, err := appkardex.FieldsFromRequest(c.request())
	if err != nil {
		return fail(env, err)
	}
	m, err := env.UC.Add(ctx, fields)
	if err != nil {
		return fail(env, err)
	}
	fmt.Fprintf(env.Out, "Lançamento registrado: %s\n", m.ID)
	return subcommands.ExitSuccess
}

// ── edit ──────────────────────────────────────────────────────────────────────

type editCmd struct{ movementFlags }

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edita un movimiento conservando id y fecha" }
func (*editCmd) Usage() string {
	return `kardex edit [-p ...] [-s ...] [-t ...] [-q ...] [-n ...] <id>

  Reemplaza los campos indicados; los omitidos conservan su valor actual.
`
}
func (c *editCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprint(env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	current, err := env.UC.Get(id)
	if err != nil {
		return fail(env, err)
	}

	req := dto.MovementRequest{
		ProductType: string(current.ProductType),
		Size:        string(current.Size),
		Type:        string(current.Type),
		Quantity:    current.Quantity,
		Notes:       current.Notes,
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			req.ProductType = c.product
		case "s":
			req.Size = c.size
		case "t":
			req.Type = c.kind
		case "q":
			req.Quantity = c.quantity
		case "n":
			req.Notes = c.notes
		}
	})

	fields, err := appkardex.FieldsFromRequest(req)
	if err != nil {
		return fail(env, err)
	}
	if _, err := env.UC.Update(ctx, id, fields); err != nil {
		return fail(env, err)
	}
	fmt.Fprintf(env.Out, "Lançamento atualizado: %s\n", id)
	return subcommands.ExitSuccess
}

// ── rm ────────────────────────────────────────────────────────────────────────

type rmCmd struct{}

func (*rmCmd) Name() string           { return "rm" }
func (*rmCmd) Synopsis() string       { return "elimina un movimiento (irreversible)" }
func (*rmCmd) Usage() string          { return "kardex rm <id>\n" }
func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprint(env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	if err := env.UC.Remove(ctx, f.Arg(0)); err != nil {
		return fail(env, err)
	}
	fmt.Fprintf(env.Out, "Lançamento excluído: %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}

// ── list ──────────────────────────────────────────────────────────────────────

type listCmd struct {
	query string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "muestra el historial (más reciente primero)" }
func (*listCmd) Usage() string {
	return `kardex list [-q <término>]

  Filtra por producto, talla, tipo u observación sin distinguir mayúsculas.
`
}
func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Término de búsqueda.")
}

func (c *listCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	md := MovementsMarkdown(env.UC.Search(c.query), c.query)
	if err := printMarkdown(env.Out, md, env.Plain); err != nil {
		return fail(env, err)
	}
	return subcommands.ExitSuccess
}

// ── summary ───────────────────────────────────────────────────────────────────

type summaryCmd struct{}

func (*summaryCmd) Name() string           { return "summary" }
func (*summaryCmd) Synopsis() string       { return "muestra el resumen por producto y talla" }
func (*summaryCmd) Usage() string          { return "kardex summary\n" }
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	if err := printMarkdown(env.Out, SummaryMarkdown(env.UC.Summary()), env.Plain); err != nil {
		return fail(env, err)
	}
	return subcommands.ExitSuccess
}

// ── import ────────────────────────────────────────────────────────────────────

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "importa un volcado JSON de la app de navegador" }
func (*importCmd) Usage() string {
	return `kardex import <archivo.json>

  Acepta el arreglo de movimientos o el objeto de localStorage completo.
  Los ids ya presentes se omiten; id y fecha originales se conservan.
`
}
func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	env := envFrom(args)
	if env == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 1 {
		fmt.Fprint(env.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(env, err)
	}
	defer file.Close()

	movements, err := DecodeDump(file, env.Key)
	if err != nil {
		return fail(env, err)
	}
	added, err := env.UC.Import(ctx, movements)
	if err != nil {
		return fail(env, err)
	}
	fmt.Fprintf(env.Out, "%d lançamento(s) importado(s), %d omitido(s).\n", added, len(movements)-added)
	return subcommands.ExitSuccess
}
