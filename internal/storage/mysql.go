package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// MySQLHistory records run summaries into a MySQL table so a CI fleet can
// keep run history in one place. Enabled when CFGTEST_RESULTS_DSN is set
// (directly or through the project's .env file).
type MySQLHistory struct {
	dsn string
}

// NewMySQLHistory returns a HistorySink for the configured DSN, or nil if
// no DSN is configured.
func NewMySQLHistory(cfg *config.Config) *MySQLHistory {
	// Load .env from the project path; missing file is fine
	envPath := filepath.Join(cfg.ProjectPath, ".env")
	_ = godotenv.Load(envPath)

	dsn := os.Getenv("CFGTEST_RESULTS_DSN")
	if dsn == "" {
		return nil
	}
	return &MySQLHistory{dsn: dsn}
}

// Record inserts one summary row, creating the table on first use.
func (m *MySQLHistory) Record(meta domain.TestResultsMeta) error {
	db, err := sql.Open("mysql", m.dsn)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	const createTable = `CREATE TABLE IF NOT EXISTS test_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		failed_test_cases INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		created_at VARCHAR(64) NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	const insert = `INSERT INTO test_runs
		(total_tests, passed_tests, failed_tests, failed_test_cases, duration_seconds, workers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := db.Exec(insert,
		meta.TotalTests, meta.PassedTests, meta.FailedTests,
		meta.FailedTestCases, meta.DurationSeconds, meta.Workers, meta.Timestamp,
	); err != nil {
		return fmt.Errorf("record run history: %w", err)
	}
	return nil
}
