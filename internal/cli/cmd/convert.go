package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"prettybytes/internal/config"
	"prettybytes/internal/logger"
	"prettybytes/internal/prettybytes"
	"prettybytes/internal/util/format"
	"prettybytes/internal/util/sizearg"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [sizes...]",
		Short: "Convert byte counts (the default command)",
		Example: `  prettybytes convert 1500 1.5GiB
  prettybytes convert --binary -p 0 1536
  prettybytes convert -o json -- -4096
  du -sb * | cut -f1 | prettybytes convert`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)

	inputs := args
	if len(inputs) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return cmd.Help()
		}
		var err error
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("read stdin: %w", err)}
		}
	}

	rows, err := convertAll(cfg.Conversion, inputs)
	if err != nil {
		return exitErr(err)
	}
	return render(cmd.OutOrStdout(), cfg.Output, rows)
}

func convertAll(conv prettybytes.Config, inputs []string) ([]format.Row, error) {
	rows := make([]format.Row, 0, len(inputs))
	for _, in := range inputs {
		size, err := sizearg.Parse(in)
		if err != nil {
			return nil, err
		}
		var row format.Row
		if size.Negative {
			row = format.DeltaRow(in, conv, prettybytes.ConvertDelta(size.Delta(), conv))
		} else {
			row = format.BytesRow(in, conv, prettybytes.Convert(size.Bytes, conv))
		}
		logger.Log.Debug("converted",
			zap.String("input", in),
			zap.String("raw", row.Raw),
			zap.Float64("value", row.Value),
			zap.String("unit", row.Unit),
		)
		rows = append(rows, row)
	}
	return rows, nil
}

// render writes rows in the requested output mode. Auto picks a styled
// table on a terminal and plain text otherwise.
func render(w io.Writer, mode string, rows []format.Row) error {
	if mode == config.OutputAuto {
		mode = config.OutputText
		if isTerminal(w) {
			mode = config.OutputTable
		}
	}
	var err error
	switch mode {
	case config.OutputJSON:
		err = format.JSON(w, rows)
	case config.OutputTable:
		err = format.Table(w, rows, isTerminal(w))
	default:
		err = format.Text(w, rows)
	}
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}

// readLines returns one input per line of r, skipping blank lines and
// lines starting with '#'.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
