package cli

import "cfgtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors  int
	TestPath    string
	Interpreter string
	Exclude     []string
	FailFast    bool
	OpenViewer  bool
	Repo        string
	EntryPoint  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors:  f.Processors,
		TestPath:    f.TestPath,
		Interpreter: f.Interpreter,
		Exclude:     f.Exclude,
		FailFast:    f.FailFast,
		OpenViewer:  f.OpenViewer,
		Repo:        f.Repo,
		EntryPoint:  f.EntryPoint,
	}
}
