package format

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"prettybytes/internal/prettybytes"
)

// Row is one converted input ready for rendering.
type Row struct {
	Input   string
	Raw     string // exact byte count, base 10
	Value   float64
	Unit    string
	Display string         // Config.Format text, e.g. "1.50 kB"
	Record  json.Marshaler // PrettyBytes or Delta
}

// BytesRow builds a row for an unsigned conversion.
func BytesRow(input string, cfg prettybytes.Config, p prettybytes.PrettyBytes) Row {
	return Row{
		Input:   input,
		Raw:     strconv.FormatUint(p.Raw, 10),
		Value:   p.Value,
		Unit:    p.Unit.Symbol(),
		Display: cfg.Format(p.Raw),
		Record:  p,
	}
}

// DeltaRow builds a row for a signed conversion.
func DeltaRow(input string, cfg prettybytes.Config, d prettybytes.Delta) Row {
	return Row{
		Input:   input,
		Raw:     strconv.FormatInt(d.Raw, 10),
		Value:   d.Value,
		Unit:    d.Unit.Symbol(),
		Display: cfg.FormatDelta(d.Raw),
		Record:  d,
	}
}

// RecordRow builds a row for a decoded record, displayed as serialized
// rather than reconverted.
func RecordRow(input string, p prettybytes.PrettyBytes) Row {
	return Row{
		Input:   input,
		Raw:     strconv.FormatUint(p.Raw, 10),
		Value:   p.Value,
		Unit:    p.Unit.Symbol(),
		Display: p.String(),
		Record:  p,
	}
}

// Text writes one formatted value per line.
func Text(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Display); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes one serialized record per line (JSON Lines).
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r.Record); err != nil {
			return fmt.Errorf("encode %q: %w", r.Input, err)
		}
	}
	return nil
}

// headerRow is the row index lipgloss/table passes to StyleFunc for the
// header; data rows start at 1.
const headerRow = 0

// cellStyles bolds the header row and right-aligns the numeric columns.
func cellStyles(styled bool, numeric ...int) func(row, col int) lipgloss.Style {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	if styled {
		header = header.Foreground(lipgloss.Color("#7D56F4"))
	}
	return func(row, col int) lipgloss.Style {
		if row == headerRow {
			return header
		}
		if slices.Contains(numeric, col) {
			return cell.Copy().Align(lipgloss.Right)
		}
		return cell
	}
}

// Table writes a bordered table of input, exact raw count and result.
// Colors are only applied when styled is true.
func Table(w io.Writer, rows []Row, styled bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INPUT", "BYTES", "VALUE", "UNIT").
		StyleFunc(cellStyles(styled, 1, 2))
	for _, r := range rows {
		t.Row(r.Input, r.Raw, strconv.FormatFloat(r.Value, 'f', -1, 64), r.Unit)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
