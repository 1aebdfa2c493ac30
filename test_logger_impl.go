package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glamcharms/storefront-contract-tests/framework"

	"github.com/fatih/color"
)

// ConsoleTestLogger prints each result as soon as its check finishes.
type ConsoleTestLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if id.Depth() == 1 {
		fmt.Fprintf(c.out(), "=== TESTING %s ===\n", strings.ToUpper(id.Name()))
	}
}

func (c *ConsoleTestLogger) TestFinished(result framework.TestResult, debugOutput framework.CapturedOutput) {
	out := c.out()
	if result.Success {
		fmt.Fprintf(out, "%s: %s\n", color.GreenString("✅ PASS"), result.TestID.Name())
	} else {
		fmt.Fprintf(out, "%s: %s\n", color.RedString("❌ FAIL"), result.TestID.Name())
	}
	if result.Details != "" {
		for i, line := range strings.Split(result.Details, "\n") {
			if i == 0 {
				fmt.Fprintf(out, "   Details: %s\n", line)
			} else {
				fmt.Fprintf(out, "   %s\n", line)
			}
		}
	}
	if len(debugOutput) > 0 &&
		((!result.Success && c.DebugOutputOnFailure) || (result.Success && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(out, "    DEBUG ")
	}
	fmt.Fprintln(out)
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "%s: %s\n\n", color.YellowString("SKIPPED"), id.Name())
	} else {
		fmt.Fprintf(c.out(), "%s: %s (%s)\n\n", color.YellowString("SKIPPED"), id.Name(), reason)
	}
}
