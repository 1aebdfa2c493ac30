package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
	now        func() time.Time
}

// Context is the state of one check, or of a group of checks, within a test run. It is similar to
// Go's *testing.T, and satisfies require.TestingT so that testify assertions can be used with it.
//
// Checks always run one at a time, in the order in which Run is called; a Context is never shared
// between goroutines.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	details     string
	hasSubtests bool
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
		now:        time.Now,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) (TestResult, bool) {
	var result TestResult
	var recorded bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				if c.skipped {
					return
				}
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v", r)
					c.debugLogger.Printf("%s", string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
				}
			}
		}()
		action(c)
	}()

	if c.skipped {
		return result, false
	}
	// A group only produces a result of its own if something went wrong outside of its subtests.
	if c.failed || (len(c.id.Path) > 0 && !c.hasSubtests) {
		result = TestResult{
			TestID:    c.id,
			Success:   !c.failed,
			Details:   c.resultDetails(),
			Errors:    c.errors,
			Timestamp: c.env.now(),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		recorded = true
	}
	return result, recorded
}

func (c *Context) resultDetails() string {
	if !c.failed {
		return c.details
	}
	messages := make([]string, 0, len(c.errors))
	for _, e := range c.errors {
		messages = append(messages, e.Error())
	}
	return strings.Join(messages, "; ")
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a check synchronously. The check cannot start until the previous one has returned,
// so it can rely on whatever state earlier checks left behind. It is skipped if the filter for
// this run does not accept its ID.
func (c *Context) Run(name string, action func(*Context)) {
	c.runChild(name, action, true)
}

// RunGroup is like Run, but for a group that only organizes checks. Groups are never filtered;
// the filter applies to each check inside them.
func (c *Context) RunGroup(name string, action func(*Context)) {
	c.runChild(name, action, false)
}

func (c *Context) runChild(name string, action func(*Context), filtered bool) {
	c.hasSubtests = true
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if filtered && c.env.filter != nil && !c.env.filter(id) {
		c.env.results.Skipped = append(c.env.results.Skipped, id)
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	result, recorded := c1.run(action)
	if c1.skipped {
		c.env.results.Skipped = append(c.env.results.Skipped, id)
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else if recorded {
		c.env.testLogger.TestFinished(result, c1.debugLogger.Output())
	}
}

// Errorf records a failure. It does not end the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.errors = append(c.errors, fmt.Errorf(format, args...))
}

// Failed returns true if any failure has been recorded for this test.
func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// SetDetails sets the description that is reported if the test passes. If the test fails, the
// failure messages are reported instead.
func (c *Context) SetDetails(format string, args ...interface{}) {
	c.details = fmt.Sprintf(format, args...)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
