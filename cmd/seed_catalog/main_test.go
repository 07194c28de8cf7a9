package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadCSV_ISO88591(t *testing.T) {
	utf := "nombre;categoria;proveedor;stock;stock_minimo;precio_compra;precio_venta\n" +
		"Batería iPhone;Repuestos;Distribuidora Año Nuevo;4;2;35.000;60.000\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	records, err := readCSV([]byte(latin))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Batería iPhone", records[1][0])
	assert.Equal(t, "Distribuidora Año Nuevo", records[1][2])
}

func TestParseRows(t *testing.T) {
	records := [][]string{
		{"nombre", "categoria", "proveedor", "stock", "stock_minimo", "precio_compra", "precio_venta"},
		{"Pantalla", "Repuestos", "Norte", "3", "1", "$ 1.234,50", "2000"},
		{"", "ignorada"},
		{"Cable USB", "", "", "", "", "", ""},
	}
	rows, err := parseRows(records)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 3, rows[0].Stock)
	assert.True(t, rows[0].PurchasePrice.Equal(decimal.RequireFromString("1234.5")))
	assert.True(t, rows[0].SalePrice.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, 0, rows[1].Stock)
	assert.True(t, rows[1].PurchasePrice.IsZero())
}

func TestParseRows_StockInvalido(t *testing.T) {
	_, err := parseRows([][]string{{"h"}, {"Pantalla", "", "", "tres"}})
	assert.ErrorContains(t, err, "fila 2")
}

func TestMoneyOrZero(t *testing.T) {
	cases := map[string]string{
		"1.234":    "1234",
		"1234.50":  "1234.5",
		"12.5":     "12.5",
		"1.234,50": "1234.5",
		"$ 99":     "99",
		"":         "0",
	}
	for in, want := range cases {
		got, err := moneyOrZero(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "%q → %s", in, got)
	}
}

func TestWriteSQL_IDsEstables(t *testing.T) {
	rows := []catalogRow{{Name: "O'Neill Kit", Category: "Repuestos", Stock: 2, PurchasePrice: decimal.NewFromInt(10)}}

	var a, b bytes.Buffer
	require.NoError(t, writeSQL(&a, rows))
	require.NoError(t, writeSQL(&b, rows))
	assert.Equal(t, a.String(), b.String())

	sql := a.String()
	assert.Contains(t, sql, "'O''Neill Kit'")
	assert.Contains(t, sql, stableID("category", "repuestos"))
	assert.Equal(t, 1, strings.Count(sql, "INSERT INTO products"))
	assert.Contains(t, sql, "NULL, 2, 0, 10.00, 0.00")
}
