package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of a single test or group of tests. It implements the same basic
// methods as Go's *testing.T that the testify assert and require packages need, so those
// packages can be used with it directly.
type Context struct {
	env         *environment
	id          TestID
	metadata    Metadata
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
	hasSubtests bool
}

// Run starts a test run. The action receives the root Context, which has an empty TestID;
// it should call Run on that Context to start each top-level test.
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
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		c.runCleanups()
		if len(c.id.Path) == 0 {
			return // the root context is not itself a test
		}
		result := TestResult{
			TestID:   c.id,
			Metadata: c.metadata,
			Errors:   c.errors,
			Skipped:  c.skipped,
			Group:    c.hasSubtests,
			Duration: time.Since(startTime),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// Cleanup functions run in reverse order of registration. A panic in one of them is recorded
// as a test failure but does not stop the others.
func (c *Context) runCleanups() {
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.failed = true
					err := fmt.Errorf("unexpected panic in cleanup: %+v", r)
					c.errors = append(c.errors, err)
					c.env.testLogger.TestError(c.id, err)
				}
			}()
			c.cleanups[i]()
		}()
	}
	c.cleanups = nil
}

// ID returns the identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Metadata returns the annotations attached to the current test so far.
func (c *Context) Metadata() Metadata {
	return c.metadata
}

// Annotate merges non-empty fields of m into the current test's metadata. Subtests inherit
// the metadata of their parent at the time they start, except for DisplayName.
func (c *Context) Annotate(m Metadata) {
	c.metadata = c.metadata.Merge(m)
}

// Run runs a subtest. It does not return until the subtest has finished, whether it passed,
// failed, or was skipped.
func (c *Context) Run(name string, action func(*Context)) {
	c.runSubtest(name, false, action)
}

// RunGroup runs a subtest whose only purpose is to run further subtests. It is selected with
// Filter.IncludeGroup rather than IncludeTest.
func (c *Context) RunGroup(name string, action func(*Context)) {
	c.runSubtest(name, true, action)
}

func (c *Context) runSubtest(name string, group bool, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasSubtests = true

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil {
		included := c.env.filter.IncludeTest(id)
		if group {
			included = c.env.filter.IncludeGroup(id)
		}
		if !included {
			c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
			return
		}
	}
	inherited := c.metadata
	inherited.DisplayName = ""
	c1 := &Context{
		id:       id,
		env:      c.env,
		metadata: inherited,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Defer schedules a function to be called when the current test ends, regardless of whether
// it passed, failed, or panicked.
func (c *Context) Defer(cleanupFn func()) {
	c.cleanups = append(c.cleanups, cleanupFn)
}

// Errorf records a test failure. It does not cause the test to exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// Failed returns true if the test has failed so far.
func (c *Context) Failed() bool {
	return c.failed
}

// FailNow causes the test to exit immediately.
func (c *Context) FailNow() {
	panic(c)
}

// Skip causes the test to exit immediately and be reported as skipped.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug adds a line of debug output for the current test.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the current test's debug output.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
