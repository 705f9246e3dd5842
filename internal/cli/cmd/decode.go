package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"prettybytes/internal/apperrors"
	"prettybytes/internal/logger"
	"prettybytes/internal/prettybytes"
	"prettybytes/internal/util/format"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [json...]",
		Short: "Validate and print serialized records",
		Long: "Reads {\"raw\": \"...\", \"value\": n, \"unit\": \"...\"} records from the arguments, " +
			"or as a JSON stream from stdin, and prints them. With --strict, or when --system or " +
			"--binary is given, units must belong to the configured ladder.",
		Example: `  prettybytes decode '{"raw":"1536","value":1.5,"unit":"KiB"}'
  prettybytes convert -o json 1500 | prettybytes decode --strict`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDecode,
	}
	cmd.Flags().Bool("strict", false, "Reject units outside the configured system")
	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig(cmd)
	strict, _ := cmd.Flags().GetBool("strict")
	strict = strict || cmd.Flags().Changed("system") || cmd.Flags().Changed("binary")

	var records []json.RawMessage
	if len(args) > 0 {
		for _, a := range args {
			records = append(records, json.RawMessage(a))
		}
	} else {
		var err error
		records, err = readRecords(cmd.InOrStdin())
		if err != nil {
			return exitErr(err)
		}
	}

	rows := make([]format.Row, 0, len(records))
	for i, rec := range records {
		p, err := decodeOne(cfg.Conversion, rec, strict)
		if err != nil {
			return exitErr(fmt.Errorf("record %d: %w", i+1, err))
		}
		logger.Log.Debug("decoded", zap.Int("record", i+1), zap.Uint64("raw", p.Raw), zap.Stringer("unit", p.Unit))
		rows = append(rows, format.RecordRow(fmt.Sprintf("record %d", i+1), p))
	}
	return render(cmd.OutOrStdout(), cfg.Output, rows)
}

func decodeOne(conv prettybytes.Config, rec []byte, strict bool) (prettybytes.PrettyBytes, error) {
	var (
		p   prettybytes.PrettyBytes
		err error
	)
	if strict {
		p, err = conv.Decode(rec)
	} else {
		err = json.Unmarshal(rec, &p)
	}
	if err != nil && !apperrors.IsInvalidSerialized(err) {
		// Malformed JSON never reaches UnmarshalJSON.
		err = apperrors.Wrap(apperrors.ErrInvalidSerialized, err, "malformed record")
	}
	return p, err
}

// readRecords splits a JSON stream into raw values. Whitespace between
// values, including newlines, is ignored.
func readRecords(r io.Reader) ([]json.RawMessage, error) {
	var out []json.RawMessage
	dec := json.NewDecoder(r)
	for {
		var rec json.RawMessage
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidSerialized, err, "record %d", len(out)+1)
		}
		out = append(out, rec)
	}
}
