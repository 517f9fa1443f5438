package main

import (
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"time"

	"github.com/apitesting/users-api-tests/client"
	"github.com/apitesting/users-api-tests/config"
	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/framework"
	"github.com/apitesting/users-api-tests/logging"
	"github.com/apitesting/users-api-tests/mockapi"
	"github.com/apitesting/users-api-tests/report"
	"github.com/apitesting/users-api-tests/userstests"
)

func main() {
	os.Exit(run(os.Args, os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, out, errOut io.Writer) int {
	cfg, err := config.Load(getenv)
	if err != nil {
		fmt.Fprintf(errOut, "Invalid configuration: %s\n", err)
		return 1
	}
	var params commandParams
	if !params.Read(args, cfg, errOut) {
		return 1
	}
	logger, err := logging.New(cfg.LogLevel, errOut)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	// The report location is fixed before any test runs, so every test in the run agrees on it.
	startedAt := time.Now()
	var reportSettings report.Settings
	if cfg.ReportDir != "" {
		reportSettings = report.NewSettings(cfg.ReportDir, startedAt)
	}

	baseURL := cfg.BaseURL
	if params.mock {
		server := httptest.NewServer(mockapi.New())
		defer server.Close()
		baseURL = server.URL
		logger.Infof("Using mock API at %s", baseURL)
	}

	clientOpts := []client.Option{
		client.WithTimeout(cfg.RequestTimeout()),
		client.WithLogger(logging.DebugPrintf{Logger: logger}),
	}
	if !params.mock {
		probe, err := client.New(baseURL, clientOpts...)
		if err != nil {
			fmt.Fprintf(errOut, "Invalid API URL: %s\n", err)
			return 1
		}
		err = probe.AwaitReachable(cfg.StartupTimeout, out)
		probe.Close()
		if err != nil {
			fmt.Fprintf(errOut, "API is not reachable: %s\n", err)
			return 1
		}
	}

	env := userstests.NewEnvironment(baseURL, clientOpts...)
	if cfg.FixturesFile != "" {
		env.LoadFixtures = func() (*fixtures.Store, error) {
			return fixtures.Load(cfg.FixturesFile)
		}
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)
	fmt.Fprintln(out, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	results := userstests.RunTestSuite(env, params.filters.AsFilter, testLogger)
	finishedAt := time.Now()

	fmt.Fprintln(out)
	PrintResults(out, results)
	if params.filters.MustMatch.IsDefined() && results.Passed()+len(results.Failures) == 0 {
		fmt.Fprintf(out, "No tests matched -run %s. Test IDs start with the module name, as in \"%s/create\".\n",
			params.filters.MustMatch, userstests.ModuleName)
	}

	if reportSettings.Path() != "" {
		summary := report.SummaryFromResults(results, baseURL, startedAt, finishedAt)
		if err := report.Write(reportSettings, summary); err != nil {
			logger.Errorf("Could not write report: %s", err)
		} else {
			logger.Infof("Report written to %s", reportSettings.Path())
		}
	}

	if !results.OK() {
		failed := make([]framework.TestID, 0, len(results.Failures))
		for _, f := range results.Failures {
			failed = append(failed, f.TestID)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the failed tests again:")
		fmt.Fprintf(out, "  %s\n", rerunCommand(args[0], cfg, params, failed))
		return 1
	}
	return 0
}
