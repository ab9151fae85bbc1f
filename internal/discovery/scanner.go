package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// Scanner discovers test scripts in the test directory
type Scanner struct {
	prefix string
	suffix string
}

// NewScanner creates a new Scanner for the fixed filename convention
func NewScanner() *Scanner {
	return &Scanner{
		prefix: config.TestFilePrefix,
		suffix: config.TestFileSuffix,
	}
}

// Scan finds all test scripts directly inside root. Every entry named
// <prefix><identifier><suffix> yields one Test; subdirectories are not
// descended into, the test directory is flat.
func (s *Scanner) Scan(root string) ([]domain.Test, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read test path: %w", err)
	}

	var tests []domain.Test
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, s.prefix) || !strings.HasSuffix(name, s.suffix) {
			continue
		}
		// Every matching filename yields an identifier, including the
		// degenerate "test_.py" whose identifier is empty
		id := strings.TrimSuffix(strings.TrimPrefix(name, s.prefix), s.suffix)
		tests = append(tests, domain.Test{
			Identifier: id,
			Path:       filepath.Join(root, name),
			FileName:   name,
		})
	}

	return tests, nil
}
