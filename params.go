package main

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/apitesting/users-api-tests/config"
	"github.com/apitesting/users-api-tests/framework"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type commandParams struct {
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	mock     bool
}

// Read parses the command line into params and cfg. Flags override whatever cfg already holds
// from the environment.
func (c *commandParams) Read(args []string, cfg *config.Config, errOut io.Writer) bool {
	timeout := cfg.RequestTimeout()

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "base URL of the users API")
	fs.StringVar(&cfg.FixturesFile, "fixtures", cfg.FixturesFile, "YAML or JSON file of payload templates (default: built-in)")
	fs.StringVar(&cfg.ReportDir, "report-dir", cfg.ReportDir, `directory for the JSON report ("" to disable)`)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "runner log level: debug, info, warn, or error")
	fs.DurationVar(&timeout, "timeout", timeout, "per-request timeout (0 for none)")
	fs.Var(&c.filters.MustMatch, "run",
		`regex pattern(s) to select tests to run, matched per "/"-separated element like go test -run; `+
			`test IDs start with the module name, as in "users/create"`)
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.mock, "mock", false, "run against an in-process imitation of the demo API")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	if timeout < 0 {
		fmt.Fprintln(errOut, "-timeout cannot be negative")
		return false
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "timeout" {
			cfg.TimeoutMS = ldvalue.NewOptionalInt(int(timeout.Milliseconds()))
		}
	})
	return true
}

// rerunCommand builds a command line that runs only the given tests again, with the same
// settings as this run.
func rerunCommand(program string, cfg *config.Config, params commandParams, failed []framework.TestID) string {
	var b commandBuilder
	b.add(program)
	if params.mock {
		b.add("-mock")
	} else {
		b.add("-url", cfg.BaseURL)
	}
	if cfg.FixturesFile != "" {
		b.add("-fixtures", cfg.FixturesFile)
	}
	if cfg.TimeoutMS.IsDefined() {
		b.add("-timeout", (time.Duration(cfg.TimeoutMS.IntValue()) * time.Millisecond).String())
	}
	for _, id := range failed {
		b.add("-run", exactPattern(id))
	}
	b.add("-debug")
	return b.String()
}

// exactPattern returns a -run pattern that matches only the test with this ID and its
// subtests.
func exactPattern(id framework.TestID) string {
	elements := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		elements = append(elements, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(elements, "/")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
