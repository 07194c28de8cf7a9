// Package pdf implementa la exportación del reporte del taller a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + título │ Período + generado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: inventario, alertas de stock, proveedores, ingresos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLAS: categorías / más vendidos / rentabilidad /          │
//	│          proveedores / movimientos de stock                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: id del snapshot                                     │
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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

var _ reporting.Exporter = (*MarotoReportExporter)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Exporter ──────────────────────────────────────────────────────────────────

// MarotoReportExporter implementa reporting.Exporter generando un PDF A4.
type MarotoReportExporter struct {
	business string
	lang     language.Tag
}

// NewMarotoReportExporter construye el exportador. business aparece en el encabezado.
func NewMarotoReportExporter(business string) *MarotoReportExporter {
	return &MarotoReportExporter{business: business, lang: language.Spanish}
}

// pageBuilder estado de una exportación. cases.Caser no se comparte entre goroutines,
// así que cada llamada a Export arma el suyo.
type pageBuilder struct {
	business string
	printer  *message.Printer
	upper    cases.Caser
}

// ContentType MIME del documento.
func (g *MarotoReportExporter) ContentType() string { return "application/pdf" }

// FileExtension extensión del archivo descargado.
func (g *MarotoReportExporter) FileExtension() string { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoReportExporter) Export(ctx context.Context, data *report.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte del taller", true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)
	b := &pageBuilder{
		business: g.business,
		printer:  message.NewPrinter(g.lang),
		upper:    cases.Upper(g.lang),
	}

	m.AddRows(b.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(b.kpiRows(data)...)

	b.addSection(m, "Distribución por categoría", b.categoryTable(data.CategoryDistribution))
	b.addSection(m, "Productos más vendidos", b.topSellingTable(data.TopSellingProducts))
	b.addSection(m, "Rentabilidad por producto", b.profitabilityTable(data.ProfitabilityAnalysis))
	b.addSection(m, "Desempeño de proveedores", b.supplierTable(data.SupplierPerformance))
	b.addSection(m, "Movimientos de stock", b.movementTable(data.StockMovements))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Snapshot "+data.ID, props.Text{Size: 6.5, Color: colorGray, Top: 1}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio + título (izq) y período + fecha de generación (der).
func (b *pageBuilder) headerRow(data *report.ReportData) core.Row {
	period := fmt.Sprintf("%s – %s",
		data.Period.Start.Format("02/01/2006"), data.Period.End.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(b.business, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario y ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// kpiRows: dos filas de cuatro indicadores.
func (b *pageBuilder) kpiRows(data *report.ReportData) []core.Row {
	kpi := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 6, Align: align.Center}),
		)
	}
	stockColor := colorPrimary
	if data.OutOfStockCount > 0 {
		stockColor = colorRed
	}
	return []core.Row{
		row.New(14).Add(
			kpi("Productos", b.integer(data.TotalProducts), colorPrimary),
			kpi("Valor del inventario", b.money(data.TotalInventoryValue), colorPrimary),
			kpi("Ingresos del período", b.money(data.PeriodRevenue), colorPrimary),
			kpi("Margen promedio", b.percent(data.AverageMarginPercent), colorPrimary),
		),
		row.New(14).Add(
			kpi("Sin stock", b.integer(data.OutOfStockCount), stockColor),
			kpi("Stock bajo", b.integer(data.LowStockCount), colorPrimary),
			kpi("Proveedores", b.integer(data.SupplierCount), colorPrimary),
			kpi("Categorías", b.integer(data.CategoryCount), colorPrimary),
		),
	}
}

// addSection agrega título y filas; si no hay filas deja una leyenda.
func (b *pageBuilder) addSection(m core.Maroto, title string, rows []core.Row) {
	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(7).Add(col.New(12).Add(
		text.New(b.upper.String(title), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	if len(rows) <= 1 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Sin datos en el período", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
		return
	}
	m.AddRows(rows...)
}

// column describe una columna de tabla: etiqueta, ancho (de 12) y alineación.
type column struct {
	label string
	size  int
	align align.Type
}

func headerOf(cols []column) core.Row {
	out := make([]core.Col, len(cols))
	for i, c := range cols {
		out[i] = col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: c.align, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(out...)
}

func rowOf(cols []column, values ...string) core.Row {
	out := make([]core.Col, len(cols))
	for i, c := range cols {
		out[i] = col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 7.5, Align: c.align, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(5).Add(out...)
}

var categoryCols = []column{
	{"Categoría", 4, align.Left},
	{"Productos", 2, align.Center},
	{"Valor", 3, align.Right},
	{"% del total", 1, align.Right},
	{"Margen prom.", 2, align.Right},
}

func (b *pageBuilder) categoryTable(items []report.CategoryDistribution) []core.Row {
	rows := []core.Row{headerOf(categoryCols)}
	for _, c := range items {
		rows = append(rows, rowOf(categoryCols,
			c.Name, b.integer(c.ProductCount), b.money(c.TotalValue),
			b.percent(c.Percentage), b.percent(c.AverageMarginPercent)))
	}
	return rows
}

var topSellingCols = []column{
	{"#", 1, align.Center},
	{"Producto", 4, align.Left},
	{"Unidades", 1, align.Center},
	{"Ingresos", 2, align.Right},
	{"Utilidad", 2, align.Right},
	{"Margen", 2, align.Right},
}

func (b *pageBuilder) topSellingTable(items []report.TopProduct) []core.Row {
	rows := []core.Row{headerOf(topSellingCols)}
	for _, p := range items {
		rows = append(rows, rowOf(topSellingCols,
			b.integer(p.Rank), p.Name, b.integer(p.UnitsSold),
			b.money(p.Revenue), b.money(p.Profit), b.percent(p.MarginPercent)))
	}
	return rows
}

var profitabilityCols = []column{
	{"#", 1, align.Center},
	{"Producto", 3, align.Left},
	{"Precio prom.", 2, align.Right},
	{"Costo prom.", 2, align.Right},
	{"Utilidad", 2, align.Right},
	{"Margen", 2, align.Right},
}

func (b *pageBuilder) profitabilityTable(items []report.ProductProfitability) []core.Row {
	rows := []core.Row{headerOf(profitabilityCols)}
	for _, p := range items {
		rows = append(rows, rowOf(profitabilityCols,
			b.integer(p.Rank), p.Name, b.money(p.AvgUnitPrice), b.money(p.AvgUnitCost),
			b.money(p.Profit), b.percent(p.MarginPercent)))
	}
	return rows
}

var supplierCols = []column{
	{"Proveedor", 4, align.Left},
	{"Estado", 2, align.Center},
	{"Calificación", 2, align.Center},
	{"Entrega (días)", 2, align.Center},
	{"Productos", 2, align.Center},
}

func (b *pageBuilder) supplierTable(items []report.SupplierPerformance) []core.Row {
	rows := []core.Row{headerOf(supplierCols)}
	for _, s := range items {
		rating := notAvailable
		if v, ok := s.Rating.Get(); ok {
			rating = v.StringFixed(1)
		}
		delivery := notAvailable
		if v, ok := s.AverageDeliveryDays.Get(); ok {
			delivery = b.integer(v)
		}
		rows = append(rows, rowOf(supplierCols,
			s.Name, s.Status.Label(), rating, delivery, b.integer(s.ProductCount)))
	}
	return rows
}

var movementCols = []column{
	{"Fecha", 2, align.Left},
	{"Producto", 4, align.Left},
	{"Tipo", 2, align.Center},
	{"Cantidad", 1, align.Center},
	{"Valor est.", 3, align.Right},
}

func (b *pageBuilder) movementTable(items []report.MovementView) []core.Row {
	rows := []core.Row{headerOf(movementCols)}
	for _, mv := range items {
		rows = append(rows, rowOf(movementCols,
			mv.CreatedAt.Format("02/01 15:04"), mv.ProductName, mv.Type.Label(),
			b.printer.Sprintf("%+d", mv.QuantityDelta), b.money(mv.EstimatedValue)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

const notAvailable = "N/D"

// money formatea con separador de miles local y sin decimales. Ej: 1234567 → "$1.234.567"
func (b *pageBuilder) money(d decimal.Decimal) string {
	return "$" + b.printer.Sprint(number.Decimal(d.Round(0).IntPart()))
}

func (b *pageBuilder) percent(d decimal.Decimal) string {
	return b.printer.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(1))) + "%"
}

func (b *pageBuilder) integer(n int) string {
	return b.printer.Sprint(number.Decimal(n))
}
