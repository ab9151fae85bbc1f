package domain

import "time"

// TestResult represents the result of executing a test script
type TestResult struct {
	Identifier string        // Test identifier that was executed
	Path       string        // Path to the test script
	Success    bool          // Whether the script passed
	Output     string        // Raw interpreter output
	Error      error         // Error if execution failed
	Duration   time.Duration // Time taken to execute
}

// TestResultsMeta contains metadata about a test run
type TestResultsMeta struct {
	TotalTests      int     `json:"total_tests"`
	FailedTests     int     `json:"failed_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTestCases int     `json:"failed_test_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for test results
type TestResultsOutput struct {
	Meta    TestResultsMeta `json:"meta"`
	Details []TestFailure   `json:"details"`
}
