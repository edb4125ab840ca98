package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unholy-lang/unholy/internal/astfmt"
	"github.com/unholy-lang/unholy/internal/obslog"
	"github.com/unholy-lang/unholy/internal/syntax"
)

var astFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		path := args[0]
		format := astFormat
		if format == "" {
			format = cfg.ASTFormat
		}

		start := time.Now()
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var opts []syntax.ScannerOption
		if !cfg.FutureReservedFatal {
			opts = append(opts, syntax.WithFutureReservedHandler(func(tok syntax.SemanticElement) {
				log.Warn("future-reserved identifier used", obslog.Fields{
					"file": path, "position": tok.Position.String(), "identifier": tok.RawText,
				})
			}))
		}
		file, parseErr := syntax.ParseFile(path, src, opts...)
		fields := obslog.Fields{"file": path}
		for k, v := range obslog.Duration(time.Since(start)) {
			fields[k] = v
		}
		if parseErr != nil {
			log.Error("parse failed", mergeFields(fields, obslog.Err(parseErr)))
			return parseErr
		}
		log.Info("parse succeeded", fields)

		switch format {
		case "json":
			return astfmt.FprintJSON(os.Stdout, file)
		default:
			astfmt.Fprint(os.Stdout, file)
			return nil
		}
	},
}

func mergeFields(a, b obslog.Fields) obslog.Fields {
	merged := make(obslog.Fields, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

func init() {
	parseCmd.Flags().StringVar(&astFormat, "format", "", `output format: "text" or "json" (default from config, else "text")`)
	rootCmd.AddCommand(parseCmd)
}
