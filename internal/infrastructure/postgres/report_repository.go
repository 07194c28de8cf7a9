package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura que alimentan el motor de reportes.
// Cada método aplica su propio timeout; el pool admite llamadas concurrentes.
type ReportRepo struct {
	q       Querier
	timeout time.Duration
}

// NewReportRepository construye el adaptador. timeout <= 0 deja solo el deadline del ctx entrante.
func NewReportRepository(q Querier, timeout time.Duration) *ReportRepo {
	return &ReportRepo{q: q, timeout: timeout}
}

func (r *ReportRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// FetchProducts devuelve todos los productos con su categoría (LEFT JOIN: puede ser nula).
func (r *ReportRepo) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
	SELECT
	    p.id,
	    p.name,
	    c.id                           AS category_id,
	    c.name                         AS category_name,
	    p.supplier_id,
	    p.stock_quantity,
	    p.min_stock,
	    COALESCE(p.purchase_price, 0)  AS purchase_price,
	    COALESCE(p.sale_price, 0)      AS sale_price
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	ORDER BY p.name, p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, queryError("reports.FetchProducts", err)
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var (
			p            entity.Product
			categoryID   *string
			categoryName *string
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&categoryID,
			&categoryName,
			&p.SupplierID,
			&p.StockQuantity,
			&p.MinStock,
			&p.PurchasePrice,
			&p.SalePrice,
		); err != nil {
			return nil, queryError("reports.FetchProducts scan", err)
		}
		p.Category = categoryFrom(categoryID, categoryName)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("reports.FetchProducts rows", err)
	}
	return products, nil
}

// FetchSuppliers devuelve todos los proveedores; rating y tiempo de entrega pueden ser nulos.
func (r *ReportRepo) FetchSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
	SELECT id, name, rating, delivery_time_days
	FROM suppliers
	ORDER BY name, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, queryError("reports.FetchSuppliers", err)
	}
	defer rows.Close()

	suppliers := []entity.Supplier{}
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Rating, &s.DeliveryTimeDays); err != nil {
			return nil, queryError("reports.FetchSuppliers scan", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("reports.FetchSuppliers rows", err)
	}
	return suppliers, nil
}

// FetchStockMovements devuelve como máximo limit movimientos del rango, del más reciente al más antiguo.
func (r *ReportRepo) FetchStockMovements(ctx context.Context, dr repository.DateRange, limit int) ([]entity.StockMovement, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
	SELECT
	    m.id,
	    m.created_at,
	    m.type,
	    m.product_id,
	    m.quantity,
	    COALESCE(m.reason, '')  AS reason,
	    p.name                  AS product_name,
	    p.purchase_price
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id
	WHERE m.created_at BETWEEN $1 AND $2
	ORDER BY m.created_at DESC, m.id
	LIMIT $3`

	rows, err := r.q.Query(ctx, query, dr.Start, dr.End, limit)
	if err != nil {
		return nil, queryError("reports.FetchStockMovements", err)
	}
	defer rows.Close()

	movements := []entity.StockMovement{}
	for rows.Next() {
		var (
			m             entity.StockMovement
			movementType  string
			productName   *string
			purchasePrice *decimal.Decimal
		)
		if err := rows.Scan(
			&m.ID,
			&m.CreatedAt,
			&movementType,
			&m.ProductID,
			&m.QuantityDelta,
			&m.Reason,
			&productName,
			&purchasePrice,
		); err != nil {
			return nil, queryError("reports.FetchStockMovements scan", err)
		}
		m.Type = entity.MovementType(movementType)
		m.Product = movementProductFrom(productName, purchasePrice)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("reports.FetchStockMovements rows", err)
	}
	return movements, nil
}

// FetchSales devuelve las ventas del rango con sus líneas. Las líneas se consultan en una
// segunda query sobre el mismo rango, con LEFT JOIN a productos y categorías (el producto
// puede haber sido eliminado).
func (r *ReportRepo) FetchSales(ctx context.Context, dr repository.DateRange) ([]entity.Sale, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const salesQuery = `
	SELECT id, created_at, COALESCE(total_amount, 0) AS total_amount
	FROM sales
	WHERE created_at BETWEEN $1 AND $2
	ORDER BY created_at, id`

	rows, err := r.q.Query(ctx, salesQuery, dr.Start, dr.End)
	if err != nil {
		return nil, queryError("reports.FetchSales", err)
	}
	sales := []entity.Sale{}
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.TotalAmount); err != nil {
			rows.Close()
			return nil, queryError("reports.FetchSales scan", err)
		}
		sales = append(sales, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, queryError("reports.FetchSales rows", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	const itemsQuery = `
	SELECT
	    si.sale_id,
	    si.product_id,
	    si.quantity,
	    COALESCE(si.subtotal, 0)  AS subtotal,
	    p.name                    AS product_name,
	    c.name                    AS category_name,
	    p.purchase_price
	FROM sale_items si
	JOIN sales           s ON s.id = si.sale_id
	LEFT JOIN products   p ON p.id = si.product_id
	LEFT JOIN categories c ON c.id = p.category_id
	WHERE s.created_at BETWEEN $1 AND $2
	ORDER BY si.sale_id, si.id`

	itemRows, err := r.q.Query(ctx, itemsQuery, dr.Start, dr.End)
	if err != nil {
		return nil, queryError("reports.FetchSales items", err)
	}
	defer itemRows.Close()

	var lines []saleLine
	for itemRows.Next() {
		var l saleLine
		if err := itemRows.Scan(
			&l.SaleID,
			&l.ProductID,
			&l.Quantity,
			&l.Subtotal,
			&l.ProductName,
			&l.CategoryName,
			&l.PurchasePrice,
		); err != nil {
			return nil, queryError("reports.FetchSales items scan", err)
		}
		lines = append(lines, l)
	}
	if err := itemRows.Err(); err != nil {
		return nil, queryError("reports.FetchSales items rows", err)
	}
	return attachLines(sales, lines), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de filas
// ──────────────────────────────────────────────────────────────────────────────

// saleLine fila de sale_items con las columnas nulas del LEFT JOIN.
type saleLine struct {
	SaleID        string
	ProductID     string
	Quantity      int
	Subtotal      decimal.Decimal
	ProductName   *string
	CategoryName  *string
	PurchasePrice *decimal.Decimal
}

// attachLines reparte las líneas entre sus ventas. Toda venta queda con un slice no nulo,
// aunque no tenga líneas; las líneas de ventas desconocidas se ignoran.
func attachLines(sales []entity.Sale, lines []saleLine) []entity.Sale {
	index := make(map[string]int, len(sales))
	for i := range sales {
		sales[i].Items = []entity.SaleItem{}
		index[sales[i].ID] = i
	}
	for _, l := range lines {
		i, ok := index[l.SaleID]
		if !ok {
			continue
		}
		sales[i].Items = append(sales[i].Items, entity.SaleItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
			Product:   snapshotFrom(l),
		})
	}
	return sales
}

// snapshotFrom devuelve nil cuando el LEFT JOIN no encontró el producto.
func snapshotFrom(l saleLine) *entity.ProductSnapshot {
	if l.ProductName == nil {
		return nil
	}
	snap := &entity.ProductSnapshot{Name: *l.ProductName, CategoryName: l.CategoryName}
	if l.PurchasePrice != nil {
		snap.PurchasePrice = *l.PurchasePrice
	}
	return snap
}

func categoryFrom(id, name *string) *entity.Category {
	if id == nil {
		return nil
	}
	c := &entity.Category{ID: *id}
	if name != nil {
		c.Name = *name
	}
	return c
}

func movementProductFrom(name *string, purchasePrice *decimal.Decimal) *entity.MovementProduct {
	if name == nil {
		return nil
	}
	mp := &entity.MovementProduct{Name: *name}
	if purchasePrice != nil {
		mp.PurchasePrice = *purchasePrice
	}
	return mp
}
