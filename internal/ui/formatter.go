package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintSummary displays run statistics and, when something failed, the
// failed cases grouped by test script.
func (f *Formatter) PrintSummary(output *domain.TestResultsOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Tests")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test(s) failed with %d case failure(s)", meta.FailedTests, meta.FailedTestCases)
		fmt.Println()
		f.printFailedCases(output.Details)
	}
}

// printFailedCases lists failed cases grouped by their test script.
func (f *Formatter) printFailedCases(failures []domain.TestFailure) {
	if len(failures) == 0 {
		return
	}

	grouped := make(map[string][]domain.TestFailure)
	var order []string
	for _, failure := range failures {
		if _, seen := grouped[failure.Identifier]; !seen {
			order = append(order, failure.Identifier)
		}
		grouped[failure.Identifier] = append(grouped[failure.Identifier], failure)
	}

	for i, id := range order {
		if i == len(order)-1 {
			color.Cyan("└── %s", id)
		} else {
			color.Cyan("├── %s", id)
		}
		for j, failure := range grouped[id] {
			var prefix string
			if i == len(order)-1 {
				prefix = "    "
			} else {
				prefix = "│   "
			}
			if j == len(grouped[id])-1 {
				prefix += "└── "
			} else {
				prefix += "├── "
			}
			label := failure.TestName
			if failure.Kind == domain.KindError {
				label += " [error]"
			}
			color.Red("%s%s", prefix, label)
		}
	}
}

// PrintTestList prints the current selection without executing it.
func (f *Formatter) PrintTestList(tests []domain.Test) {
	color.Green("Found %d test(s):\n", len(tests))
	for i, test := range tests {
		if i == len(tests)-1 {
			color.Cyan("└── %s  (%s)", test.Identifier, test.FileName)
		} else {
			color.Cyan("├── %s  (%s)", test.Identifier, test.FileName)
		}
	}
}

// PrintTestOutput echoes the raw output of a test script to standard
// output as it completes, with a header naming the test and its outcome.
func (f *Formatter) PrintTestOutput(result domain.TestResult) {
	if result.Success {
		color.Green("\n── %s: ok ──", result.Identifier)
	} else {
		color.Red("\n── %s: failed ──", result.Identifier)
	}
	out := strings.TrimRight(result.Output, "\n")
	if out != "" {
		fmt.Println(out)
	}
	if result.Error != nil && out == "" {
		fmt.Println(result.Error)
	}
}
