package cli

import "testing"

func TestFlags_ToConfigFlags(t *testing.T) {
	flags := Flags{
		Processors:  2,
		TestPath:    "/tests",
		Interpreter: "python3",
		Exclude:     []string{"a", "b"},
		FailFast:    true,
		OpenViewer:  true,
		Repo:        "/src/repo",
		EntryPoint:  "ci/run-tests.sh",
	}

	cfg := flags.ToConfigFlags()

	if cfg.Processors != 2 || cfg.TestPath != "/tests" || cfg.Interpreter != "python3" {
		t.Errorf("execution flags not propagated: %+v", cfg)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "a" {
		t.Errorf("exclusions not propagated: %v", cfg.Exclude)
	}
	if !cfg.FailFast || !cfg.OpenViewer {
		t.Errorf("boolean flags not propagated: %+v", cfg)
	}
	if cfg.Repo != "/src/repo" || cfg.EntryPoint != "ci/run-tests.sh" {
		t.Errorf("ci flags not propagated: %+v", cfg)
	}
}
