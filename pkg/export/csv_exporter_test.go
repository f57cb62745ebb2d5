package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"No", "Register No", "Name"},
		Rows: [][]string{
			{"1", "S100", "Asha, K"},
			{"2", "S101"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "No,Register No,Name\n1,S100,\"Asha, K\"\n2,S101,\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}
