package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/ncalc/pkg/repl"
)

// replEnv provides the environment for the repl command.
type replEnv struct {
	configPath string
}

// getReplCmd returns the definition of the repl command.
func getReplCmd() *cobra.Command {
	env := &replEnv{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop.",
		Long: `
Reads one expression per line from stdin and prints its value. Blank
lines re-prompt without evaluating; Ctrl-D exits.`,
		RunE: env.runReplCmd,
	}

	cmd.Flags().StringVar(&env.configPath, "config", "", "Path to a TOML config file (default: ncalc/config.toml under the user config dir)")

	return cmd
}

func (e *replEnv) runReplCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger("repl")

	cfg, err := repl.LoadConfig(e.configPath)
	if err != nil {
		return err
	}

	return repl.New(cfg, os.Stdin, os.Stdout, logger).Run()
}
