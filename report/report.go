package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apitesting/users-api-tests/framework"
)

// TimestampLayout is the time format used in report file names.
const TimestampLayout = "2006-01-02_15-04-05"

const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Settings says where the report for a run goes. It is decided once, before any test runs, and
// is not changed afterward.
type Settings struct {
	dir  string
	path string
}

// NewSettings returns the settings for a run that starts at now, writing into dir. The file
// name contains the start time, so separate runs never overwrite each other's reports.
func NewSettings(dir string, now time.Time) Settings {
	name := fmt.Sprintf("report_%s.json", now.Format(TimestampLayout))
	return Settings{dir: dir, path: filepath.Join(dir, name)}
}

// Path returns the report file path.
func (s Settings) Path() string {
	return s.path
}

// Dir returns the directory the report is written into.
func (s Settings) Dir() string {
	return s.dir
}

// Summary is the content of a report file.
type Summary struct {
	StartedAt time.Time `json:"startedAt"`
	Duration  string    `json:"duration"`
	BaseURL   string    `json:"baseUrl"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Tests     []Test    `json:"tests"`
}

// Test is one entry in a report.
type Test struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	DurationMS  int64    `json:"durationMs"`
	SkipReason  string   `json:"skipReason,omitempty"`
	Errors      []string `json:"errors,omitempty"`
	DebugOutput []string `json:"debugOutput,omitempty"`
}

// SummaryFromResults converts the results of a run. Groups that only contained subtests are left
// out; their outcome is the outcome of their subtests.
func SummaryFromResults(results framework.Results, baseURL string, startedAt, finishedAt time.Time) Summary {
	s := Summary{
		StartedAt: startedAt,
		Duration:  finishedAt.Sub(startedAt).String(),
		BaseURL:   baseURL,
		Failed:    len(results.Failures),
		Skipped:   results.Skipped(),
		Passed:    results.Passed(),
	}
	for _, r := range results.Leaves() {
		t := Test{
			ID:          r.TestID.String(),
			Status:      StatusPassed,
			DurationMS:  r.Duration.Milliseconds(),
			SkipReason:  r.SkipReason,
			DebugOutput: r.DebugOutput.Lines(),
		}
		switch {
		case r.Skipped:
			t.Status = StatusSkipped
		case len(r.Errors) > 0:
			t.Status = StatusFailed
		}
		for _, err := range r.Errors {
			t.Errors = append(t.Errors, err.Error())
		}
		s.Tests = append(s.Tests, t)
	}
	return s
}

// Write writes the summary as indented JSON to the settings' path, creating the directory if
// necessary.
func Write(settings Settings, summary Summary) error {
	if settings.path == "" {
		return fmt.Errorf("report settings were not initialized")
	}
	if err := os.MkdirAll(settings.dir, 0o755); err != nil {
		return fmt.Errorf("could not create report directory: %w", err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(settings.path, data, 0o644); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}
