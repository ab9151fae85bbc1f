package execution

import (
	"time"

	"cfgtest/internal/domain"
)

// Executor executes a selection of tests and returns results
type Executor interface {
	Execute(tests []domain.Test) ([]domain.TestResult, time.Duration, error)
}
