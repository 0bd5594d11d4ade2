package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/vira"
	"github.com/xiam/vira/ast"
)

var sexprOutput bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTree(cmd.OutOrStdout(), args[0], sexprOutput)
	},
}

func init() {
	astCmd.Flags().BoolVar(&sexprOutput, "sexpr", false, "print one s-expression per statement")
	rootCmd.AddCommand(astCmd)
}

func printTree(out io.Writer, path string, sexpr bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	nodes, diags := vira.Parse(src)
	if diags.Len() > 0 {
		newPrinter(out).Report(path, src, diags)
		return errCheckFailed
	}

	if !sexpr {
		ast.Print(out, nodes...)
		return nil
	}

	for _, node := range nodes {
		fmt.Fprintln(out, ast.Encode(node))
	}
	return nil
}
