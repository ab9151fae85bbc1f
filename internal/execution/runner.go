package execution

import (
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// Runner executes a single test script
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes the interpreter for a single test script and captures its
// combined output. A nonzero exit is a failure; any other exec error (e.g.
// interpreter not found) is also surfaced through the Error field.
func (r *Runner) Run(test domain.Test) domain.TestResult {
	cmd := exec.Command(r.config.GetInterpreter(), test.Path)
	cmd.Env = os.Environ()
	cmd.Dir = filepath.Dir(test.Path)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.TestResult{
		Identifier: test.Identifier,
		Path:       test.Path,
		Success:    err == nil,
		Output:     string(output),
		Error:      err,
		Duration:   time.Since(start),
	}
}
