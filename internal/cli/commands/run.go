package commands

import (
	"fmt"

	"cfgtest/internal/config"
	"cfgtest/internal/discovery"
	"cfgtest/internal/domain"
	"cfgtest/internal/execution"
	"cfgtest/internal/parser"
	"cfgtest/internal/storage"
	"cfgtest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	parser    *parser.UnittestParser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	unittestParser *parser.UnittestParser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		parser:    unittestParser,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := rc.scanner.Scan(rc.config.GetTestPath())
	if err != nil {
		return err
	}

	// Selection is discovered minus excluded; unknown exclusions are no-ops
	tests = rc.filter.Exclude(tests, rc.config.Flags.Exclude)

	if len(tests) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(tests))
	rc.executor.SetProgress(progressBar)
	// Echo each script's output verbatim as it completes
	rc.executor.SetOnResult(rc.formatter.PrintTestOutput)

	results, duration, err := rc.executor.ExecuteWithOptions(tests, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	var failures []domain.TestFailure
	failed := 0
	for _, result := range results {
		if !result.Success {
			failed++
			failures = append(failures, rc.parser.ParseFailure(result)...)
		}
	}

	if err := rc.storage.Save(results, failures, duration, rc.config.Processors); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load test results: %w", err)
	}
	rc.formatter.PrintSummary(output)

	if history := storage.NewMySQLHistory(rc.config); history != nil {
		if err := history.Record(output.Meta); err != nil {
			color.Yellow("could not record run history: %v", err)
		}
	}

	if failed > 0 {
		if rc.config.Flags.OpenViewer {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d of %d test(s) failed", failed, len(results))
	}
	return nil
}
