package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/ncalc/pkg/interp"
)

// getEvalCmd returns the definition of the eval command.
func getEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one expression and print the result.",
		Long: `
Evaluates the expression given on the command line and prints the result
on stdout. Any lexical, syntax or arithmetic error is fatal (exit 1).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEvalCmd,
	}
}

func runEvalCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger("eval")

	// Allow the expression to be split across shell words: `ncalc eval 1 + 2`.
	src := strings.Join(args, " ")
	logger.Debug().Str("input", src).Msg("evaluating")

	n, err := interp.Evaluate(src)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, n.Format())
	return nil
}
