package domain

// Test represents a discovered test script
type Test struct {
	Identifier string // Name between the fixed prefix and suffix, e.g. "squid" for test_squid.py
	Path       string // Full path to the test script
	FileName   string // Just the filename
}
