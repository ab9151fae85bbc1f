package domain

// Failure kinds as reported by the unittest trailer.
const (
	KindFailure = "failure" // Assertion failed
	KindError   = "error"   // Raised during execution or could not run at all
)

// TestFailure represents a failed or errored test case
type TestFailure struct {
	TestName   string   `json:"test_name"`
	Identifier string   `json:"identifier"`
	FilePath   string   `json:"file_path"`
	Kind       string   `json:"kind"`
	Message    string   `json:"message"`
	Traceback  []string `json:"traceback"`
	Resolved   bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
