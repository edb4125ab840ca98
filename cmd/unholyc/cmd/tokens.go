package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unholy-lang/unholy/internal/obslog"
	"github.com/unholy-lang/unholy/internal/syntax"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Scan a source file and print its raw token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		path := args[0]
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
		scanner := syntax.NewScanner(path, src, opts...)
		for {
			tok, err := scanner.NextToken()
			if err != nil {
				log.Error("scan failed", mergeFields(obslog.Fields{"file": path}, obslog.Err(err)))
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%-24s %s %q\n", tok.Kind, tok.Position, tok.RawText)
			if tok.Kind == syntax.EndOfFileToken {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
