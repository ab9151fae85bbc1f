package execution

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

// writeScript drops a shell script posing as a test file; the runner is
// pointed at "sh" so the tests do not need a Python interpreter.
func writeScript(t *testing.T, dir, name, body string) domain.Test {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, "test_"), ".py")
	return domain.Test{Identifier: id, Path: path, FileName: name}
}

func shConfig() *config.Config {
	cfg := config.New()
	cfg.Flags.Interpreter = "sh"
	return cfg
}

func TestRunner_Run(t *testing.T) {
	tmpDir := t.TempDir()
	runner := NewRunner(shConfig())

	t.Run("passing script", func(t *testing.T) {
		test := writeScript(t, tmpDir, "test_ok.py", "echo all good\nexit 0\n")
		result := runner.Run(test)

		if !result.Success {
			t.Errorf("expected success, got failure: %v", result.Error)
		}
		if !strings.Contains(result.Output, "all good") {
			t.Errorf("expected captured output, got %q", result.Output)
		}
		if result.Identifier != "ok" {
			t.Errorf("expected identifier ok, got %q", result.Identifier)
		}
	})

	t.Run("failing script is recorded, not propagated", func(t *testing.T) {
		test := writeScript(t, tmpDir, "test_bad.py", "echo something broke\nexit 1\n")
		result := runner.Run(test)

		if result.Success {
			t.Error("expected failure")
		}
		if result.Error == nil {
			t.Error("expected exec error to be recorded")
		}
		if !strings.Contains(result.Output, "something broke") {
			t.Errorf("expected captured output, got %q", result.Output)
		}
	})

	t.Run("missing interpreter is an error result", func(t *testing.T) {
		cfg := config.New()
		cfg.Flags.Interpreter = "definitely-not-an-interpreter"
		r := NewRunner(cfg)
		test := writeScript(t, tmpDir, "test_noexec.py", "exit 0\n")

		result := r.Run(test)
		if result.Success {
			t.Error("expected failure when interpreter is missing")
		}
		if result.Error == nil {
			t.Error("expected error to be recorded")
		}
	})
}
