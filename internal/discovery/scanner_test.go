package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"test_a.py",
		"test_b.py",
		"test_c.py",
		"helpers.py",
		"test_notes.txt",
		"test_.py",
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}
	// Subdirectories are not descended into
	if err := os.MkdirAll(filepath.Join(tmpDir, "configs"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "configs", "test_nested.py"), []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	scanner := NewScanner()

	t.Run("discovers identifiers from the naming convention", func(t *testing.T) {
		tests, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(tests) != 4 {
			t.Fatalf("expected 4 tests, got %d", len(tests))
		}
		// test_.py strips to the empty identifier but still counts
		want := []string{"", "a", "b", "c"}
		for i, test := range tests {
			if test.Identifier != want[i] {
				t.Errorf("expected identifier %q at %d, got %q", want[i], i, test.Identifier)
			}
			if test.FileName != "test_"+want[i]+".py" {
				t.Errorf("unexpected file name %q", test.FileName)
			}
			if test.Path != filepath.Join(tmpDir, test.FileName) {
				t.Errorf("unexpected path %q", test.Path)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "testfile.txt")
		os.WriteFile(testFile, []byte("test"), 0644)
		_, err := scanner.Scan(testFile)
		if err == nil {
			t.Error("expected error for file path")
		}
	})

	t.Run("empty directory yields no tests", func(t *testing.T) {
		empty := t.TempDir()
		tests, err := scanner.Scan(empty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tests) != 0 {
			t.Errorf("expected no tests, got %d", len(tests))
		}
	})
}
