package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/vira"
	"github.com/xiam/vira/diag"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTokens(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// printTokens writes one token per line. On a lexical error the tokens read
// so far are printed before the diagnostic.
func printTokens(out io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	tokens, err := vira.Tokenize(src)
	for _, tok := range tokens {
		line, col := tok.Pos()
		fmt.Fprintf(out, "%d:%d %s %q\n", line, col, tok.Type(), tok.Text())
	}

	if err != nil {
		var d *diag.Diagnostic
		if !errors.As(err, &d) {
			return err
		}
		newPrinter(out).Report(path, src, diag.List{d})
		return errCheckFailed
	}

	logger.Debug("file scanned", "path", path, "tokens", len(tokens))
	return nil
}
