package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `
name: AdventureWorks
tables:
  - name: Sales
    columns:
      - name: Amount
        data_type: decimal
      - name: Quantity
        data_type: int64
      - name: OrderDate
        data_type: datetime
    measures:
      - name: Total Sales
        expression: SUM(Sales[Amount])
  - name: Product
    columns:
      - name: ProductKey
      - name: Color
`

func testModel(t *testing.T) *ModelInfo {
	t.Helper()
	m, err := Parse([]byte(sampleModel))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, "AdventureWorks", m.Name)
	require.Len(t, m.Tables, 2)
	assert.Equal(t, "Sales", m.Tables[0].Name)
	assert.Len(t, m.Tables[0].Columns, 3)
	assert.Len(t, m.Tables[0].Measures, 1)
	assert.Equal(t, "decimal", m.Tables[0].Columns[0].DataType)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("tables: {not: a list}"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleModel), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AdventureWorks", m.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTableLookup(t *testing.T) {
	m := testModel(t)

	tbl, ok := m.Table("Sales")
	require.True(t, ok)
	assert.Equal(t, "Sales", tbl.Name)

	tbl, ok = m.Table("SALES")
	require.True(t, ok)
	assert.Equal(t, "Sales", tbl.Name)

	_, ok = m.Table("Customer")
	assert.False(t, ok)
}

func TestColumnAndMeasureLookup(t *testing.T) {
	m := testModel(t)
	sales, ok := m.Table("Sales")
	require.True(t, ok)

	col, ok := sales.Column("amount")
	require.True(t, ok)
	assert.Equal(t, "Amount", col.Name)

	_, ok = sales.Column("Margin")
	assert.False(t, ok)

	mea, ok := sales.Measure("total sales")
	require.True(t, ok)
	assert.Equal(t, "Total Sales", mea.Name)

	_, ok = sales.Measure("Amount")
	assert.False(t, ok)
}

func TestHasField(t *testing.T) {
	m := testModel(t)
	sales, ok := m.Table("Sales")
	require.True(t, ok)

	assert.True(t, sales.HasField("Amount"), "column")
	assert.True(t, sales.HasField("Total Sales"), "measure")
	assert.False(t, sales.HasField("Color"), "other table's column")

	assert.True(t, m.HasAnyField("Color"))
	assert.True(t, m.HasAnyField("total sales"))
	assert.False(t, m.HasAnyField("Margin"))
}
