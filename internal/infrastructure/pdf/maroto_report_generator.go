// Package pdf implementa la generación del Reporte de Inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Período + fecha de emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | En stock | Stock bajo | Agotados | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cat. | Cant. | Precio | Status      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 120, Blue: 0}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// printer con separador de miles es-CO para montos.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{appName: appName}
}

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	stats *dto.SummaryStatsDTO,
	products []dto.ProductResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, stats.DateLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableProductRows(products) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y período del reporte (der).
func headerRow(appName, dateLabel string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(dateLabel, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: los cinco KPI del dashboard en una sola banda.
func summaryRow(stats *dto.SummaryStatsDTO) core.Row {
	kpi := func(size int, label, value string, valueColor *props.Color) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6, Color: valueColor,
			}),
		)
	}
	return row.New(15).Add(
		kpi(2, "Total productos", fmt.Sprintf("%d", stats.Total), colorPrimary),
		kpi(2, "En stock", fmt.Sprintf("%d", stats.InStock), colorPrimary),
		kpi(2, "Stock bajo", fmt.Sprintf("%d", stats.LowStock), colorWarning),
		kpi(2, "Agotados", fmt.Sprintf("%d", stats.OutOfStock), colorDanger),
		kpi(4, "Valor del inventario", "$ "+formatMoney(stats.TotalValue), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Precio", 2, align.Right),
		h("Status", 1, align.Center),
	)
}

// tableProductRows: una fila por producto del catálogo.
func tableProductRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				p.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				p.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				p.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d %s", p.Quantity, p.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$ "+formatMoney(p.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				statusLabel(p.Status),
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: statusColor(p.Status)},
			)),
		))
	}
	return result
}

// formatMoney formatea un monto con separador de miles y dos decimales.
func formatMoney(v decimal.Decimal) string {
	return printer.Sprintf("%.2f", v.InexactFloat64())
}

func statusLabel(status string) string {
	switch status {
	case "in-stock":
		return "En stock"
	case "low-stock":
		return "Bajo"
	case "out-of-stock":
		return "Agotado"
	default:
		return status
	}
}

func statusColor(status string) *props.Color {
	switch status {
	case "low-stock":
		return colorWarning
	case "out-of-stock":
		return colorDanger
	default:
		return colorGray
	}
}
