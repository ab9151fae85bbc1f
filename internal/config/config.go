package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Interpreter string
	Processors  int

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    ".",
		TestPath:       DefaultTestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Interpreter:    DefaultInterpreter,
		Processors:     DefaultProcessors,
		Flags:          Flags{Processors: DefaultProcessors},
	}
}

// GetTestPath returns the test directory, using the flag if provided,
// then the CFGTEST_TEST_PATH environment variable, then the fixed default.
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}
	if env := os.Getenv("CFGTEST_TEST_PATH"); env != "" {
		return env
	}
	return c.TestPath
}

// GetInterpreter returns the interpreter command used to run test scripts.
func (c *Config) GetInterpreter() string {
	if c.Flags.Interpreter != "" {
		return c.Flags.Interpreter
	}
	if env := os.Getenv("CFGTEST_INTERPRETER"); env != "" {
		return env
	}
	return c.Interpreter
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
