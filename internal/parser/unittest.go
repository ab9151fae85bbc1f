package parser

import (
	"fmt"
	"regexp"
	"strings"

	"cfgtest/internal/domain"
)

// UnittestParser parses verbose unittest runner output
type UnittestParser struct{}

// NewUnittestParser creates a new UnittestParser
func NewUnittestParser() *UnittestParser {
	return &UnittestParser{}
}

var (
	ranRe      = regexp.MustCompile(`Ran\s+(\d+)\s+tests?`)
	failuresRe = regexp.MustCompile(`failures=(\d+)`)
	errorsRe   = regexp.MustCompile(`errors=(\d+)`)
	// FAIL: testBadHost (test_squid.TestSquid)
	caseRe = regexp.MustCompile(`^(FAIL|ERROR):\s+(\S+)\s+\(([^)]+)\)`)
)

// ParseTestCounts extracts passed and failed test case counts from the
// runner output trailer ("Ran N tests", then "OK" or
// "FAILED (failures=x, errors=y)"). Returns (passed, failed). If the
// trailer is missing, falls back to one case per script: (1,0) for
// success, (0,1) for failure.
func (p *UnittestParser) ParseTestCounts(result domain.TestResult) (passed, failed int) {
	output := result.Output

	var total int
	if m := ranRe.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &total)
	}

	var failures, errors int
	if m := failuresRe.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &failures)
	}
	if m := errorsRe.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &errors)
	}

	failed = failures + errors
	if total >= failed {
		passed = total - failed
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one case per script
	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailure extracts per-case failure blocks from the runner output.
// Each block starts with a "FAIL:" or "ERROR:" header and runs until the
// next separator line. A script that produced no parseable blocks but
// still failed (e.g. the interpreter died before the runner started)
// yields a single error-kind failure carrying the whole output.
func (p *UnittestParser) ParseFailure(result domain.TestResult) []domain.TestFailure {
	var failures []domain.TestFailure
	lines := strings.Split(result.Output, "\n")

	for i := 0; i < len(lines); i++ {
		m := caseRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}

		kind := domain.KindFailure
		if m[1] == "ERROR" {
			kind = domain.KindError
		}
		failure := domain.TestFailure{
			TestName:   m[2],
			Identifier: result.Identifier,
			FilePath:   result.Path,
			Kind:       kind,
		}

		var messageLines []string
		var traceback []string
		inTraceback := false
		for j := i + 1; j < len(lines); j++ {
			line := lines[j]
			if isRule(line, '=') || caseRe.MatchString(line) || ranRe.MatchString(line) {
				i = j - 1
				break
			}
			// Dashed rules separate the header from the traceback inside a block
			if isRule(line, '-') {
				continue
			}
			if strings.HasPrefix(line, "Traceback") {
				inTraceback = true
			}
			if inTraceback {
				traceback = append(traceback, line)
			} else if strings.TrimSpace(line) != "" || len(messageLines) > 0 {
				messageLines = append(messageLines, line)
			}
		}

		for len(messageLines) > 0 && strings.TrimSpace(messageLines[len(messageLines)-1]) == "" {
			messageLines = messageLines[:len(messageLines)-1]
		}
		for len(traceback) > 0 && strings.TrimSpace(traceback[len(traceback)-1]) == "" {
			traceback = traceback[:len(traceback)-1]
		}
		failure.Message = strings.Join(messageLines, "\n")
		failure.Traceback = traceback
		failures = append(failures, failure)
	}

	if len(failures) == 0 && !result.Success {
		message := strings.TrimSpace(result.Output)
		if message == "" && result.Error != nil {
			message = result.Error.Error()
		}
		failures = append(failures, domain.TestFailure{
			TestName:   result.Identifier,
			Identifier: result.Identifier,
			FilePath:   result.Path,
			Kind:       domain.KindError,
			Message:    message,
		})
	}

	return failures
}

// isRule reports whether the line is a rule of the given character, as the
// runner prints around failure blocks ("===" before, "---" inside).
func isRule(line string, ch byte) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 10 {
		return false
	}
	return strings.Count(trimmed, string(ch)) == len(trimmed)
}
