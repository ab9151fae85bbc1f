package config

const (
	// DefaultTestPath is the directory the harness scans for test scripts
	DefaultTestPath = "/usr/share/cfgtest/tests"
	// TestFilePrefix is the fixed prefix of a test script filename
	TestFilePrefix = "test_"
	// TestFileSuffix is the fixed suffix of a test script filename
	TestFileSuffix = ".py"
	// DefaultInterpreter runs the test scripts
	DefaultInterpreter = "python3"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors is the default number of workers (sequential run)
	DefaultProcessors = 1
	// DefaultCIEntryPoint is the in-container script the ci command runs,
	// relative to the repository root
	DefaultCIEntryPoint = "ci/run-tests.sh"
)
