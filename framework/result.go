package framework

import (
	"fmt"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID      TestID
	Errors      []error
	Skipped     bool
	SkipReason  string
	Duration    time.Duration
	DebugOutput CapturedOutput

	// Group is true if the test ran subtests of its own. A group's own result only says whether
	// its body failed; failures in its subtests are recorded on the subtests.
	Group bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Leaves returns the results that describe actual test outcomes: every test that ran no
// subtests, plus any group whose own body failed. A group that merely contained subtests is
// left out, so it can never be reported as passing while one of its subtests failed.
func (r Results) Leaves() []TestResult {
	ret := make([]TestResult, 0, len(r.Tests))
	for _, t := range r.Tests {
		if t.Group && len(t.Errors) == 0 {
			continue
		}
		ret = append(ret, t)
	}
	return ret
}

// Passed returns the number of leaf tests that ran to completion without failing.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Leaves() {
		if !t.Skipped && len(t.Errors) == 0 {
			n++
		}
	}
	return n
}

// Skipped returns the number of leaf tests that were skipped. A group excluded by a filter
// counts once, since its subtests never ran.
func (r Results) Skipped() int {
	n := 0
	for _, t := range r.Leaves() {
		if t.Skipped {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// reformatError strips the "Error Trace" block that testify puts in front of its failure
// messages, since the stack locations are inside this module and not useful in a report.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var kept []string
	inTrace := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, "\t ")
		switch {
		case strings.HasPrefix(trimmed, "Error Trace:"):
			inTrace = true
			continue
		case strings.HasPrefix(trimmed, "Error:"), strings.HasPrefix(trimmed, "Messages:"):
			inTrace = false
		case strings.HasPrefix(trimmed, "Test:"):
			continue
		}
		if inTrace || trimmed == "" {
			continue
		}
		kept = append(kept, strings.TrimPrefix(line, "\t"))
	}
	if len(kept) == 0 {
		return err
	}
	return fmt.Errorf("%s", strings.Join(kept, "\n"))
}
