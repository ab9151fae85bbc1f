package commands

import (
	"cfgtest/internal/cli"
	"cfgtest/internal/config"
	"cfgtest/internal/discovery"
	"cfgtest/internal/execution"
	"cfgtest/internal/parser"
	"cfgtest/internal/storage"
	"cfgtest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	CI       *CICommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	unittestParser := parser.NewUnittestParser()
	runner := execution.NewRunner(cfg)
	executor := execution.NewWorkerPool(cfg, runner, unittestParser)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, executor, unittestParser, jsonStorage, formatter, errorViewer),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(jsonStorage, errorViewer),
		CI:       NewCICommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configuration tool test suite",
		Long:  "Discover test scripts, subtract the exclusion set and execute the selection. Exits nonzero if any test fails or errors.",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			if flags.Processors > 0 {
				cfg.Processors = flags.Processors
			}
			return nil
		},
	}
	runCmd.Flags().StringArrayVarP(&flags.Exclude, "exclude", "e", nil, "Test identifier to skip (repeatable)")
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 1, "Number of workers to use")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Directory to discover tests in (overrides the default)")
	runCmd.Flags().StringVar(&flags.Interpreter, "interpreter", "", "Interpreter used to run test scripts")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	runCmd.Flags().BoolVar(&flags.OpenViewer, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the test selection",
		Long:  "Scan and list the tests that would run, after applying exclusions, without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringArrayVarP(&flags.Exclude, "exclude", "e", nil, "Test identifier to skip (repeatable)")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Directory to discover tests in (overrides the default)")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	ciCmd := &cobra.Command{
		Use:   "ci",
		Short: "Replay the test suite inside the OS image matrix",
		Long:  "For each selected OS target, pull the container image, mount the repository read-write and run the in-container entry point with the OS version as its argument. Fails if any entry point exits nonzero.",
		RunE:  c.CI.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	ciCmd.Flags().StringVar(&flags.Repo, "repo", ".", "Repository path to mount into the containers")
	ciCmd.Flags().StringVar(&flags.EntryPoint, "entry-point", config.DefaultCIEntryPoint, "In-container entry point, relative to the repository root")
	rootCmd.AddCommand(ciCmd)
}
