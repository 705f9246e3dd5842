package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"prettybytes/internal/units"
	"prettybytes/internal/util/intstr"
)

// UnitEntry describes one rung of a ladder.
type UnitEntry struct {
	System units.System  `json:"system"`
	Index  int           `json:"index"`
	Symbol string        `json:"symbol"`
	Name   string        `json:"name"`
	Scale  intstr.Uint64 `json:"scale"`
}

// UnitEntries lists every rung of s in ladder order.
func UnitEntries(s units.System) []UnitEntry {
	ladder := units.Ladder(s)
	out := make([]UnitEntry, 0, len(ladder))
	for _, u := range ladder {
		out = append(out, UnitEntry{
			System: s,
			Index:  u.Index(),
			Symbol: u.Symbol(),
			Name:   u.Name(),
			Scale:  intstr.Uint64(u.Scale()),
		})
	}
	return out
}

// LaddersText writes both ladders side by side, one index per line.
func LaddersText(w io.Writer) error {
	dec, bin := UnitEntries(units.Decimal), UnitEntries(units.Binary)
	for i := range dec {
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i,
			dec[i].Symbol, dec[i].Scale, bin[i].Symbol, bin[i].Scale)
		if err != nil {
			return err
		}
	}
	return nil
}

// LaddersJSON writes one UnitEntry per line, decimal ladder first.
func LaddersJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, s := range []units.System{units.Decimal, units.Binary} {
		for _, e := range UnitEntries(s) {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// LaddersTable renders both ladders as a bordered table.
func LaddersTable(w io.Writer, styled bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INDEX", "DECIMAL", "BYTES", "BINARY", "BYTES").
		StyleFunc(cellStyles(styled, 2, 4))
	dec, bin := UnitEntries(units.Decimal), UnitEntries(units.Binary)
	for i := range dec {
		t.Row(fmt.Sprint(i), dec[i].Symbol, dec[i].Scale.String(), bin[i].Symbol, bin[i].Scale.String())
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
