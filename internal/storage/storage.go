package storage

import (
	"time"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// Storage persists and loads test run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int) error
	Load() (*domain.TestResultsOutput, error)
	// SaveOutput writes the full output (e.g. after the viewer marks failures resolved).
	SaveOutput(output *domain.TestResultsOutput) error
}

// HistorySink records run summaries to an external store, in addition to the
// primary Storage. Write-only.
type HistorySink interface {
	Record(meta domain.TestResultsMeta) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
