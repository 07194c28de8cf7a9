// seed_catalog genera un script SQL para poblar categorías, proveedores y productos
// a partir de un catálogo en Excel (.xlsx) o CSV exportado desde el POS (ISO-8859-1 o UTF-8).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.xlsx|.csv]
// Por defecto busca catalogo.xlsx en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// Columnas esperadas (con fila de encabezado):
//
//	nombre | categoria | proveedor | stock | stock_minimo | precio_compra | precio_venta
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// catalogNamespace raíz de los UUID v5: el mismo nombre produce siempre el mismo id,
// así el script se puede ejecutar varias veces.
var catalogNamespace = uuid.MustParse("6f1c7a52-3e0b-4c55-9a43-5c2f3f0d8e11")

type catalogRow struct {
	Name          string
	Category      string
	Supplier      string
	Stock         int
	MinStock      int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}

func main() {
	path := "catalogo.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	records, err := readRecords(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseRows(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpretar catálogo: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", outPath, len(rows))
}

// readRecords devuelve las filas crudas (incluido el encabezado) de la primera hoja del
// libro o del CSV.
func readRecords(path string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("el libro no tiene hojas")
		}
		return f.GetRows(sheets[0])
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return readCSV(raw)
}

// readCSV acepta UTF-8 y, si el contenido no es UTF-8 válido, lo decodifica como ISO-8859-1
// (formato por defecto de los exportes del POS).
func readCSV(raw []byte) ([][]string, error) {
	var r io.Reader = strings.NewReader(string(raw))
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = detectComma(raw)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func detectComma(raw []byte) rune {
	firstLine, _, _ := strings.Cut(string(raw), "\n")
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

// parseRows interpreta las filas saltando el encabezado y las filas sin nombre.
func parseRows(records [][]string) ([]catalogRow, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("catálogo vacío")
	}
	var rows []catalogRow
	for i, rec := range records[1:] {
		line := i + 2
		field := func(n int) string {
			if n < len(rec) {
				return strings.TrimSpace(rec[n])
			}
			return ""
		}
		if field(0) == "" {
			continue
		}
		stock, err := atoiOrZero(field(3))
		if err != nil {
			return nil, fmt.Errorf("fila %d: stock: %w", line, err)
		}
		minStock, err := atoiOrZero(field(4))
		if err != nil {
			return nil, fmt.Errorf("fila %d: stock_minimo: %w", line, err)
		}
		purchase, err := moneyOrZero(field(5))
		if err != nil {
			return nil, fmt.Errorf("fila %d: precio_compra: %w", line, err)
		}
		sale, err := moneyOrZero(field(6))
		if err != nil {
			return nil, fmt.Errorf("fila %d: precio_venta: %w", line, err)
		}
		rows = append(rows, catalogRow{
			Name:          field(0),
			Category:      field(1),
			Supplier:      field(2),
			Stock:         stock,
			MinStock:      minStock,
			PurchasePrice: purchase,
			SalePrice:     sale,
		})
	}
	return rows, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// moneyOrZero acepta "1.234,50", "1234.50" y "$ 1.234".
func moneyOrZero(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 || (strings.Count(s, ".") == 1 && len(s)-strings.Index(s, ".") == 4) {
		// puntos como separador de miles: 1.234 / 1.234.567
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(s)
}

func writeSQL(w io.Writer, rows []catalogRow) error {
	categories := map[string]struct{}{}
	suppliers := map[string]struct{}{}
	for _, r := range rows {
		if r.Category != "" {
			categories[r.Category] = struct{}{}
		}
		if r.Supplier != "" {
			suppliers[r.Supplier] = struct{}{}
		}
	}

	var b strings.Builder
	b.WriteString("-- Catálogo inicial de productos\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	b.WriteString("-- 1. Categorías\n")
	for _, name := range sortedKeys(categories) {
		fmt.Fprintf(&b, "INSERT INTO categories (id, name) VALUES ('%s', '%s')\n", stableID("category", name), escapeSQL(name))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n")
	}

	b.WriteString("\n-- 2. Proveedores\n")
	for _, name := range sortedKeys(suppliers) {
		fmt.Fprintf(&b, "INSERT INTO suppliers (id, name) VALUES ('%s', '%s')\n", stableID("supplier", name), escapeSQL(name))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;\n")
	}

	b.WriteString("\n-- 3. Productos\n")
	for _, r := range rows {
		fmt.Fprintf(&b,
			"INSERT INTO products (id, name, category_id, supplier_id, stock_quantity, min_stock, purchase_price, sale_price)\n"+
				"VALUES ('%s', '%s', %s, %s, %d, %d, %s, %s)\n",
			stableID("product", r.Name), escapeSQL(r.Name),
			nullableID("category", r.Category), nullableID("supplier", r.Supplier),
			r.Stock, r.MinStock, r.PurchasePrice.StringFixed(2), r.SalePrice.StringFixed(2))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET stock_quantity = EXCLUDED.stock_quantity, " +
			"min_stock = EXCLUDED.min_stock, purchase_price = EXCLUDED.purchase_price, sale_price = EXCLUDED.sale_price;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func stableID(kind, name string) string {
	return uuid.NewSHA1(catalogNamespace, []byte(kind+":"+strings.ToLower(name))).String()
}

func nullableID(kind, name string) string {
	if name == "" {
		return "NULL"
	}
	return "'" + stableID(kind, name) + "'"
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
