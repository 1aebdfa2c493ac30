package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/glamcharms/storefront-contract-tests/framework"
	"github.com/glamcharms/storefront-contract-tests/storetests"

	"github.com/google/uuid"
)

const defaultOutputPath = "test_results_backend.json"

type commandParams struct {
	baseURL       string
	sessionID     string
	uniqueSession bool
	outputPath    string
	timeout       time.Duration
	filters       framework.RegexFilters
	debug         bool
	debugAll      bool
	noColor       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.baseURL, "url", "", "base URL of the storefront API, for instance https://example.com/api")
	fs.StringVar(&c.sessionID, "session-id", storetests.DefaultSessionID, "session ID for cart and order operations")
	fs.BoolVar(&c.uniqueSession, "unique-session", false, "append a random suffix to the session ID")
	fs.StringVar(&c.outputPath, "output", defaultOutputPath, "file to write the JSON report to")
	fs.DurationVar(&c.timeout, "timeout", 0, "timeout for each request (0 for no timeout)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.baseURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	if c.sessionID == "" {
		fmt.Fprintln(os.Stderr, "-session-id must not be empty")
		fs.Usage()
		return false
	}
	if c.timeout < 0 {
		fmt.Fprintln(os.Stderr, "-timeout must not be negative")
		fs.Usage()
		return false
	}
	return true
}

// effectiveSessionID returns the session ID for this run. With -unique-session, every run gets its
// own cart and order history in the service.
func (c *commandParams) effectiveSessionID() string {
	if c.uniqueSession {
		return c.sessionID + "_" + uuid.NewString()
	}
	return c.sessionID
}
