package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/repository"
)

var marzo = repository.DateRange{
	Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC),
}

func newMockRepo(t *testing.T) (*ReportRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewReportRepository(mock, time.Second), mock
}

func TestFetchSales_AdjuntaLineasConProductoEliminado(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := marzo.Start.Add(36 * time.Hour)

	mock.ExpectQuery(`FROM sales WHERE created_at BETWEEN \$1 AND \$2 ORDER BY created_at, id`).
		WithArgs(marzo.Start, marzo.End).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "total_amount"}).
			AddRow("v1", created, decimal.NewFromInt(1500)).
			AddRow("v2", created.Add(time.Hour), decimal.NewFromInt(200)))

	mock.ExpectQuery(`FROM sale_items si JOIN sales s ON s.id = si.sale_id LEFT JOIN products p`).
		WithArgs(marzo.Start, marzo.End).
		WillReturnRows(mock.NewRows([]string{
			"sale_id", "product_id", "quantity", "subtotal", "product_name", "category_name", "purchase_price",
		}).
			AddRow("v1", "p1", 2, decimal.NewFromInt(1000), strPtr("Pantalla"), strPtr("Repuestos"), decPtr(300)).
			AddRow("v1", "borrado", 1, decimal.NewFromInt(500), nil, nil, nil))

	sales, err := repo.FetchSales(context.Background(), marzo)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, sales, 2)
	assert.Equal(t, "v1", sales[0].ID)
	assert.True(t, sales[0].TotalAmount.Equal(decimal.NewFromInt(1500)))
	require.Len(t, sales[0].Items, 2)
	require.NotNil(t, sales[0].Items[0].Product)
	assert.Equal(t, "Pantalla", sales[0].Items[0].Product.Name)
	assert.Equal(t, "Repuestos", *sales[0].Items[0].Product.CategoryName)
	assert.Nil(t, sales[0].Items[1].Product, "el LEFT JOIN sin producto deja el snapshot en nil")
	assert.Equal(t, 1, sales[0].Items[1].Quantity)

	require.NotNil(t, sales[1].Items, "una venta sin líneas queda con slice vacío, no nil")
	assert.Empty(t, sales[1].Items)
}

func TestFetchSales_SinVentasNoConsultaLineas(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM sales`).
		WithArgs(marzo.Start, marzo.End).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "total_amount"}))

	sales, err := repo.FetchSales(context.Background(), marzo)
	require.NoError(t, err)
	assert.NotNil(t, sales)
	assert.Empty(t, sales)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchStockMovements_PasaLimiteYProductoNulo(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := marzo.Start.Add(48 * time.Hour)

	mock.ExpectQuery(`FROM stock_movements m LEFT JOIN products p ON p.id = m.product_id .* ORDER BY m.created_at DESC, m.id LIMIT \$3`).
		WithArgs(marzo.Start, marzo.End, 100).
		WillReturnRows(mock.NewRows([]string{
			"id", "created_at", "type", "product_id", "quantity", "reason", "product_name", "purchase_price",
		}).
			AddRow("m2", at.Add(time.Hour), "outbound", "p1", -3, "venta mostrador", strPtr("Batería"), decPtr(20)).
			AddRow("m1", at, "inbound", "borrado", 5, "", nil, nil))

	movs, err := repo.FetchStockMovements(context.Background(), marzo, 100)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovementTypeOutbound, movs[0].Type)
	assert.Equal(t, -3, movs[0].QuantityDelta)
	require.NotNil(t, movs[0].Product)
	assert.True(t, movs[0].Product.PurchasePrice.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, movs[1].Product)
}

func TestFetchProducts_CategoriaYProveedorNulos(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM products p LEFT JOIN categories c ON c.id = p.category_id ORDER BY p.name, p.id`).
		WillReturnRows(mock.NewRows([]string{
			"id", "name", "category_id", "category_name", "supplier_id",
			"stock_quantity", "min_stock", "purchase_price", "sale_price",
		}).
			AddRow("p1", "Pantalla", strPtr("c1"), strPtr("Repuestos"), strPtr("s1"), 3, 1, decimal.NewFromInt(80), decimal.NewFromInt(100)).
			AddRow("p2", "Funda", nil, nil, nil, 0, 2, decimal.NewFromInt(5), decimal.NewFromInt(12)))

	products, err := repo.FetchProducts(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, products, 2)
	name, ok := products[0].CategoryName()
	assert.True(t, ok)
	assert.Equal(t, "Repuestos", name)
	assert.Equal(t, "s1", *products[0].SupplierID)
	assert.Nil(t, products[1].Category)
	assert.Nil(t, products[1].SupplierID)
}

func TestFetchSuppliers_ErrorConSQLState(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`FROM suppliers`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation \"suppliers\" does not exist"})

	_, err := repo.FetchSuppliers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reports.FetchSuppliers [42P01]")
	assert.NoError(t, mock.ExpectationsWereMet())
}
