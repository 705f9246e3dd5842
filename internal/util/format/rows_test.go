package format

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prettybytes/internal/prettybytes"
	"prettybytes/internal/units"
)

func sampleRows(t *testing.T) []Row {
	t.Helper()
	cfg, err := prettybytes.NewConfig(prettybytes.WithSystem(units.Binary), prettybytes.WithPrecision(1))
	require.NoError(t, err)
	return []Row{
		BytesRow("1536", cfg, prettybytes.Convert(1536, cfg)),
		BytesRow("max", cfg, prettybytes.Convert(math.MaxUint64, cfg)),
		DeltaRow("-2048", cfg, prettybytes.ConvertDelta(-2048, cfg)),
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleRows(t)))
	assert.Equal(t, "1.5 KiB\n16.0 EiB\n-2.0 KiB\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleRows(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"raw":"1536","value":1.5,"unit":"KiB"}`, lines[0])
	assert.JSONEq(t, `{"raw":"18446744073709551615","value":16,"unit":"EiB"}`, lines[1])
	assert.JSONEq(t, `{"raw":"-2048","value":-2,"unit":"KiB"}`, lines[2])
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, sampleRows(t), false))

	out := buf.String()
	for _, want := range []string{"INPUT", "BYTES", "VALUE", "UNIT", "18446744073709551615", "EiB", "-2048", "1.5"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "INPUT"), strings.Index(out, "1536"))
}

func TestCellStylesHeaderRow(t *testing.T) {
	style := cellStyles(false, 1, 2)

	// lipgloss/table passes the header as row 0 and data from row 1.
	for col := 0; col < 4; col++ {
		assert.True(t, style(0, col).GetBold(), "header col %d", col)
		assert.False(t, style(1, col).GetBold(), "first data row col %d", col)
	}
	assert.Equal(t, lipgloss.Right, style(1, 1).GetAlignHorizontal())
	assert.Equal(t, lipgloss.Right, style(3, 2).GetAlignHorizontal())
	assert.Equal(t, lipgloss.Left, style(1, 0).GetAlignHorizontal())
	assert.Equal(t, lipgloss.Left, style(0, 1).GetAlignHorizontal())
}

func TestRecordRow(t *testing.T) {
	p := prettybytes.PrettyBytes{Raw: 1536, Value: 1.5, Unit: units.Kibibyte}
	row := RecordRow("record 1", p)
	assert.Equal(t, "1536", row.Raw)
	assert.Equal(t, "1.5 KiB", row.Display)
	assert.Equal(t, "KiB", row.Unit)
	assert.Equal(t, p, row.Record)
}
