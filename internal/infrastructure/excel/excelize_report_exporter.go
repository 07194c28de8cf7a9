// Package excel exporta el reporte del taller a un libro XLSX con una hoja por vista.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

var _ reporting.Exporter = (*ExcelizeReportExporter)(nil)

// Nombres de hoja del libro exportado.
const (
	SheetSummary       = "Resumen"
	SheetCategories    = "Categorías"
	SheetTopSelling    = "Más vendidos"
	SheetProfitability = "Rentabilidad"
	SheetSuppliers     = "Proveedores"
	SheetMovements     = "Movimientos"
)

const notAvailable = "N/D"

// ExcelizeReportExporter implementa reporting.Exporter con excelize.
type ExcelizeReportExporter struct{}

// NewExcelizeReportExporter construye el exportador.
func NewExcelizeReportExporter() *ExcelizeReportExporter { return &ExcelizeReportExporter{} }

// ContentType MIME del libro.
func (e *ExcelizeReportExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension extensión del archivo descargado.
func (e *ExcelizeReportExporter) FileExtension() string { return "xlsx" }

// Export arma el libro y devuelve sus bytes.
func (e *ExcelizeReportExporter) Export(ctx context.Context, data *report.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("excel: reporte nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w, err := newWorkbook(f)
	if err != nil {
		return nil, err
	}

	steps := []func(*report.ReportData) error{
		w.summary,
		w.categories,
		w.topSelling,
		w.profitability,
		w.suppliers,
		w.movements,
	}
	for _, step := range steps {
		if err := step(data); err != nil {
			return nil, fmt.Errorf("excel: %w", err)
		}
	}

	// NewFile crea "Sheet1"; el resumen lo reemplaza como primera hoja
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Libro ─────────────────────────────────────────────────────────────────────

type workbook struct {
	f       *excelize.File
	header  int // estilo de encabezado
	money   int // formato moneda sin decimales
	percent int // formato 0.0
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo encabezado: %w", err)
	}
	moneyFmt := "$#,##0"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo moneda: %w", err)
	}
	pctFmt := "0.0"
	percent, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo porcentaje: %w", err)
	}
	return &workbook{f: f, header: header, money: money, percent: percent}, nil
}

// table escribe encabezados en la fila 1 y una fila por registro desde la fila 2.
// moneyCols y pctCols son índices (base 0) de columnas a formatear.
func (w *workbook) table(sheet string, headers []string, rows [][]any, moneyCols, pctCols []int) error {
	if _, err := w.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("hoja %s: %w", sheet, err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := w.f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("hoja %s: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := w.f.SetCellStyle(sheet, "A1", last, w.header); err != nil {
		return fmt.Errorf("hoja %s: %w", sheet, err)
	}

	for r, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("hoja %s fila %d: %w", sheet, r+2, err)
		}
	}
	if len(rows) > 0 {
		if err := w.styleColumns(sheet, moneyCols, len(rows), w.money); err != nil {
			return err
		}
		if err := w.styleColumns(sheet, pctCols, len(rows), w.percent); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) styleColumns(sheet string, cols []int, n, style int) error {
	for _, c := range cols {
		from, _ := excelize.CoordinatesToCellName(c+1, 2)
		to, _ := excelize.CoordinatesToCellName(c+1, n+1)
		if err := w.f.SetCellStyle(sheet, from, to, style); err != nil {
			return fmt.Errorf("hoja %s: %w", sheet, err)
		}
	}
	return nil
}

// ── Hojas ─────────────────────────────────────────────────────────────────────

func (w *workbook) summary(d *report.ReportData) error {
	rows := [][]any{
		{"Período desde", d.Period.Start.Format("2006-01-02")},
		{"Período hasta", d.Period.End.Format("2006-01-02")},
		{"Generado", d.GeneratedAt.Format("2006-01-02 15:04")},
		{"Productos", d.TotalProducts},
		{"Valor del inventario", num(d.TotalInventoryValue)},
		{"Sin stock", d.OutOfStockCount},
		{"Stock bajo", d.LowStockCount},
		{"Stock normal", d.NormalStockCount},
		{"Proveedores", d.SupplierCount},
		{"Categorías", d.CategoryCount},
		{"Margen promedio (%)", num(d.AverageMarginPercent)},
		{"Ingresos del período", num(d.PeriodRevenue)},
		{"Snapshot", d.ID},
	}
	if err := w.table(SheetSummary, []string{"Indicador", "Valor"}, rows, nil, nil); err != nil {
		return err
	}
	// filas de valor del inventario e ingresos (base 1: 6 y 13)
	for _, cell := range []string{"B6", "B13"} {
		if err := w.f.SetCellStyle(SheetSummary, cell, cell, w.money); err != nil {
			return err
		}
	}
	return w.f.SetCellStyle(SheetSummary, "B12", "B12", w.percent)
}

func (w *workbook) categories(d *report.ReportData) error {
	rows := make([][]any, 0, len(d.CategoryDistribution))
	for _, c := range d.CategoryDistribution {
		rows = append(rows, []any{c.Name, c.ProductCount, num(c.TotalValue), num(c.Percentage), num(c.AverageMarginPercent), c.Color})
	}
	return w.table(SheetCategories,
		[]string{"Categoría", "Productos", "Valor", "% del total", "Margen promedio (%)", "Color"},
		rows, []int{2}, []int{3, 4})
}

func (w *workbook) topSelling(d *report.ReportData) error {
	rows := make([][]any, 0, len(d.TopSellingProducts))
	for _, p := range d.TopSellingProducts {
		rows = append(rows, []any{
			p.Rank, p.Name, p.Category, p.UnitsSold,
			num(p.Revenue), num(p.EstimatedCost), num(p.Profit), num(p.MarginPercent),
		})
	}
	return w.table(SheetTopSelling,
		[]string{"#", "Producto", "Categoría", "Unidades", "Ingresos", "Costo estimado", "Utilidad", "Margen (%)"},
		rows, []int{4, 5, 6}, []int{7})
}

func (w *workbook) profitability(d *report.ReportData) error {
	rows := make([][]any, 0, len(d.ProfitabilityAnalysis))
	for _, p := range d.ProfitabilityAnalysis {
		rows = append(rows, []any{
			p.Rank, p.Name, p.Category, p.UnitsSold,
			num(p.Revenue), num(p.EstimatedCost), num(p.Profit), num(p.MarginPercent),
			num(p.AvgUnitPrice), num(p.AvgUnitCost), num(p.PerUnitProfit),
		})
	}
	return w.table(SheetProfitability,
		[]string{"#", "Producto", "Categoría", "Unidades", "Ingresos", "Costo estimado", "Utilidad",
			"Margen (%)", "Precio prom.", "Costo prom.", "Utilidad por unidad"},
		rows, []int{4, 5, 6, 8, 9, 10}, []int{7})
}

func (w *workbook) suppliers(d *report.ReportData) error {
	rows := make([][]any, 0, len(d.SupplierPerformance))
	for _, s := range d.SupplierPerformance {
		rows = append(rows, []any{
			s.Name, s.Status.Label(), metricValue(s.Rating), metricValue(s.AverageDeliveryDays),
			s.ProductCount, metricValue(s.TotalOrders), metricValue(s.TotalOrderValue),
			metricValue(s.OnTimeDeliveryPercent),
		})
	}
	return w.table(SheetSuppliers,
		[]string{"Proveedor", "Estado", "Calificación", "Entrega (días)", "Productos",
			"Órdenes", "Valor órdenes", "Entregas a tiempo (%)"},
		rows, nil, nil)
}

func (w *workbook) movements(d *report.ReportData) error {
	rows := make([][]any, 0, len(d.StockMovements))
	for _, m := range d.StockMovements {
		rows = append(rows, []any{
			m.CreatedAt.Format("2006-01-02 15:04"), m.ProductName, m.Type.Label(),
			m.QuantityDelta, m.Reason, num(m.EstimatedValue),
		})
	}
	return w.table(SheetMovements,
		[]string{"Fecha", "Producto", "Tipo", "Cantidad", "Motivo", "Valor estimado"},
		rows, []int{5}, nil)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// num convierte a float64 para que la celda quede numérica en la hoja.
func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// metricValue devuelve el valor numérico o "N/D" cuando el dato no está disponible.
func metricValue[T any](m report.Metric[T]) any {
	v, ok := m.Get()
	if !ok {
		return notAvailable
	}
	if d, isDec := any(v).(decimal.Decimal); isDec {
		return num(d)
	}
	return v
}
