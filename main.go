package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/glamcharms/storefront-contract-tests/framework"
	"github.com/glamcharms/storefront-contract-tests/framework/harness"
	"github.com/glamcharms/storefront-contract-tests/storetests"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	testHarness, err := harness.NewTestHarness(params.baseURL, params.timeout, mainDebugLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		return 1
	}
	state := storetests.NewRunState(params.effectiveSessionID())

	fmt.Println("Starting storefront API contract tests")
	fmt.Printf("Base URL: %s\n", testHarness.BaseURL())
	fmt.Printf("Session ID: %s\n", state.SessionID)
	fmt.Println(strings.Repeat("=", 60))
	framework.PrintFilterDescription(os.Stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := storetests.RunTestSuite(testHarness, state, params.filters.AsFilter, testLogger)

	framework.PrintResults(os.Stdout, results)

	status := 0
	if err := framework.WriteReport(params.outputPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "\nCould not save results: %s\n", err)
		status = 1
	} else {
		fmt.Printf("\nDetailed results saved to: %s\n", params.outputPath)
	}
	if !results.OK() {
		status = 1
	}
	return status
}
