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

// Context is the framework's equivalent of *testing.T. Each test or group of tests gets its
// own Context; a Context started with RunModule also owns the module-scoped fixtures used by
// any test underneath it.
type Context struct {
	env         *environment
	parent      *Context
	id          TestID
	module      bool
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	hasChildren bool
	errors      []error
	deferred    []func()
	fixtures    map[*Fixture]fixtureState
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
	}
	c := &Context{env: env, module: true}
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
		c.runDeferred()
		if len(c.id.Path) == 0 {
			return // the root context is not a test
		}
		result := TestResult{
			TestID:      c.id,
			Errors:      c.errors,
			Skipped:     c.skipped,
			SkipReason:  c.skipReason,
			Duration:    time.Since(startTime),
			DebugOutput: c.debugLogger.Output(),
			Group:       c.hasChildren,
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// runDeferred calls the functions registered with Defer in reverse order. A panic in a
// deferred function is reported as a test error and does not stop the others.
func (c *Context) runDeferred() {
	for len(c.deferred) > 0 {
		last := len(c.deferred) - 1
		fn := c.deferred[last]
		c.deferred = c.deferred[:last]
		func() {
			defer func() {
				if r := recover(); r != nil {
					if _, ok := r.(*Context); ok {
						return
					}
					c.failed = true
					err := fmt.Errorf("unexpected panic in teardown: %+v", r)
					c.errors = append(c.errors, err)
					c.env.testLogger.TestError(c.id, err)
				}
			}()
			fn()
		}()
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest.
func (c *Context) Run(name string, action func(*Context)) {
	c.runChild(name, false, action)
}

// RunModule runs a group of tests that share module-scoped fixtures. Fixtures with
// ScopeModule that are used anywhere inside action are created at most once, and are torn
// down when action returns.
func (c *Context) RunModule(name string, action func(*Context)) {
	c.runChild(name, true, action)
}

func (c *Context) runChild(name string, module bool, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}
	c.hasChildren = true

	c.env.testLogger.TestStarted(id)
	if !module && c.env.filter != nil && !c.env.filter(id) {
		c.env.results.Tests = append(c.env.results.Tests,
			TestResult{TestID: id, Skipped: true, SkipReason: skipReasonFilter})
		c.env.testLogger.TestSkipped(id, skipReasonFilter)
		return
	}
	c1 := &Context{
		id:     id,
		env:    c.env,
		parent: c,
		module: module,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

const skipReasonFilter = "excluded by filter parameters"

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) FailNow() {
	panic(c)
}

// Failed reports whether the test has failed so far.
func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to be called when this test ends, whether it passed, failed, or
// was skipped. Deferred functions run in last-in-first-out order.
func (c *Context) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// moduleOwner returns the nearest enclosing context, starting with this one, that was created by
// RunModule. The root context counts as a module.
func (c *Context) moduleOwner() *Context {
	for p := c; p != nil; p = p.parent {
		if p.module {
			return p
		}
	}
	return c
}
