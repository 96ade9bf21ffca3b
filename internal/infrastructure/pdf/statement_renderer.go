// Package pdf genera el estado de cuenta de la contabilidad con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + periodo      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Concepto | Cargo | Abono | Saldo | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Cargos / Abonos / Saldo final                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/accounting"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/export"
)

var _ accounting.StatementRenderer = (*StatementRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// StatementRenderer implementa accounting.StatementRenderer.
type StatementRenderer struct {
	title string
}

// NewStatementRenderer construye el renderer; title aparece en el encabezado.
func NewStatementRenderer(title string) *StatementRenderer {
	return &StatementRenderer{title: title}
}

// RenderStatement genera el PDF y devuelve sus bytes.
func (r *StatementRenderer) RenderStatement(_ context.Context, movements []*entity.Movement, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		WithAuthor(r.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r.title, period(movements), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en el periodo.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, mv := range movements {
		m.AddRows(movementRow(mv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title, periodLabel string, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Periodo: "+periodLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Concepto", 4, align.Left),
		h("Cargo", 2, align.Right),
		h("Abono", 2, align.Right),
		h("Saldo", 2, align.Right),
	)
}

func movementRow(mv *entity.Movement) core.Row {
	balanceText := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
	if mv.Status == entity.MovementStatusIncomplete {
		balanceText.Color = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(export.Date(mv.Date), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(mv.Concept, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(export.OptionalMoney(mv.Debit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(export.OptionalMoney(mv.Credit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(export.Money(mv.Balance), balanceText)),
	)
}

func totalsRow(movements []*entity.Movement) core.Row {
	debits, credits := totals(movements)
	final := decimal.Zero
	if n := len(movements); n > 0 {
		final = movements[n-1].Balance
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total cargos:"),
			label("Total abonos:"),
			label("Saldo final:"),
		),
		col.New(3).Add(
			value(export.Money(debits)),
			value(export.Money(credits)),
			text.New(export.Money(final), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func totals(movements []*entity.Movement) (decimal.Decimal, decimal.Decimal) {
	debits, credits := decimal.Zero, decimal.Zero
	for _, mv := range movements {
		if mv.Debit != nil {
			debits = debits.Add(*mv.Debit)
		}
		if mv.Credit != nil {
			credits = credits.Add(*mv.Credit)
		}
	}
	return debits, credits
}

// period describe el rango cubierto por los movimientos (vienen ordenados por fecha).
func period(movements []*entity.Movement) string {
	if len(movements) == 0 {
		return "—"
	}
	return export.Date(movements[0].Date) + " al " + export.Date(movements[len(movements)-1].Date)
}
