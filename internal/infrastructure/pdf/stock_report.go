// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Descripción | Precio | Cant. | Valor   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades y valor del inventario                    │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.StockReportGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implementa ports.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	printer *message.Printer
}

// NewStockReportGenerator construye el generador. Los números salen con formato del idioma tag.
func NewStockReportGenerator(tag language.Tag) *StockReportGenerator {
	return &StockReportGenerator{printer: message.NewPrinter(tag)}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	stocks []*entity.Stock,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt, len(stocks)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(stocks)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(stocks))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StockReportGenerator) headerRow(at time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.printer.Sprintf("%d stocks", count), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
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
		h("ID", 1, align.Center),
		h("Nombre", 3, align.Left),
		h("Descripción", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Cant.", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

// tableRows una fila por stock. Cantidad negativa se marca en rojo.
func (g *StockReportGenerator) tableRows(stocks []*entity.Stock) []core.Row {
	rows := make([]core.Row, 0, len(stocks))
	for _, s := range stocks {
		qtyProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if s.Quantity < 0 {
			qtyProps.Color = colorRed
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(s.ID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(s.ShortDescription, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(g.money(s.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(strconv.Itoa(s.Quantity), qtyProps)),
			col.New(2).Add(text.New(g.money(stockValue(s)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *StockReportGenerator) totalsRow(stocks []*entity.Stock) core.Row {
	units := 0
	total := decimal.Zero
	for _, s := range stocks {
		units += s.Quantity
		total = total.Add(stockValue(s))
	}
	bold := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})
	}
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(bold("TOTAL:")),
		col.New(1).Add(bold(g.printer.Sprintf("%d", units))),
		col.New(2).Add(bold(g.money(total))),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// stockValue precio * cantidad.
func stockValue(s *entity.Stock) decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// money formatea con separadores del idioma y dos decimales. Ej (es): 1.234,50
func (g *StockReportGenerator) money(d decimal.Decimal) string {
	return "$" + g.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
