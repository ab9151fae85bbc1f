package storage

import (
	"errors"
	"testing"
	"time"

	"cfgtest/internal/config"
	"cfgtest/internal/domain"
)

func tmpStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st := tmpStorage(t)

	results := []domain.TestResult{
		{Identifier: "a", Success: true},
		{Identifier: "b", Success: false, Error: errors.New("exit status 1")},
		{Identifier: "c", Success: true},
	}
	failures := []domain.TestFailure{
		{TestName: "testBadHost", Identifier: "b", Kind: domain.KindFailure, Message: "bad host"},
	}

	if err := st.Save(results, failures, 1500*time.Millisecond, 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if output.Meta.TotalTests != 3 {
		t.Errorf("expected 3 total, got %d", output.Meta.TotalTests)
	}
	if output.Meta.PassedTests != 2 || output.Meta.FailedTests != 1 {
		t.Errorf("expected 2 passed / 1 failed, got %d/%d", output.Meta.PassedTests, output.Meta.FailedTests)
	}
	if output.Meta.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", output.Meta.Workers)
	}
	if len(output.Details) != 1 || output.Details[0].TestName != "testBadHost" {
		t.Errorf("unexpected details: %+v", output.Details)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st := tmpStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}

func TestJSONStorage_SaveOutputUpdatesResolved(t *testing.T) {
	st := tmpStorage(t)

	if err := st.Save(nil, []domain.TestFailure{{TestName: "t", Kind: domain.KindFailure}}, time.Second, 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	output.Details[0].Resolved = true
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save output failed: %v", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Details[0].Resolved {
		t.Error("resolved flag was not persisted")
	}
}
