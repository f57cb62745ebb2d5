package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter().Render(Sheet{
		Name:    "S100",
		Title:   "Asha Kumar",
		Headers: []string{"Subject", "Max Marks"},
		Rows: []SheetRow{
			{Cells: []string{"Mathematics", "100"}, Fill: "b4c8ff"},
			{Cells: []string{"Total", "100"}},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows("S100")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Asha Kumar", rows[0][0])
	assert.Equal(t, []string{"Subject", "Max Marks"}, rows[2])
	assert.Equal(t, []string{"Mathematics", "100"}, rows[3])
	assert.Equal(t, []string{"Total", "100"}, rows[4])

	filled, err := f.GetCellStyle("S100", "A4")
	require.NoError(t, err)
	plain, err := f.GetCellStyle("S100", "A5")
	require.NoError(t, err)
	assert.NotEqual(t, plain, filled)
}

func TestXLSXExporterNumbered(t *testing.T) {
	out, err := NewXLSXExporter().Render(Sheet{
		Headers:  []string{"Register No"},
		Rows:     []SheetRow{{Cells: []string{"S100"}}, {Cells: []string{"S101"}}},
		Numbered: true,
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"No", "Register No"}, {"1", "S100"}, {"2", "S101"}}, rows)
}

func TestXLSXExporterRequiresHeaders(t *testing.T) {
	_, err := NewXLSXExporter().Render(Sheet{})
	assert.Error(t, err)
}
