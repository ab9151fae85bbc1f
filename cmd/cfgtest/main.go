package main

import (
	"fmt"
	"os"

	"cfgtest/internal/cli"
	"cfgtest/internal/cli/commands"
	"cfgtest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "cfgtest",
		Short:   "Configuration tool test harness",
		Long:    `Test harness for the configuration tool. Discovers the test scripts in the test directory, runs the selection after applying exclusions, and replays the suite inside containerized OS images for CI.`,
		Version: version,
	}

	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
