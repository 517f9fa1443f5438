package framework

import "fmt"

// Scope determines how long a fixture value lives.
type Scope int

const (
	// ScopeTest values are created for each test that uses them and torn down when it ends.
	ScopeTest Scope = iota

	// ScopeModule values are created once per module (see Context.RunModule) and shared by every
	// test in it.
	ScopeModule
)

func (s Scope) String() string {
	switch s {
	case ScopeTest:
		return "test"
	case ScopeModule:
		return "module"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Fixture describes a value that tests can ask for with Context.Use. The framework calls setup
// the first time the value is needed in a scope and teardown, if any, when that scope ends.
type Fixture struct {
	name     string
	scope    Scope
	setup    func(*Context) (interface{}, error)
	teardown func(interface{})
}

type fixtureState struct {
	value interface{}
	err   error
}

// NewFixture creates a Fixture. The setup function receives the context of the test that first
// asked for the value; it may log to it, but must report failure by returning an error.
func NewFixture(
	name string,
	scope Scope,
	setup func(*Context) (interface{}, error),
	teardown func(interface{}),
) *Fixture {
	return &Fixture{name: name, scope: scope, setup: setup, teardown: teardown}
}

func (f *Fixture) Name() string { return f.name }

func (f *Fixture) Scope() Scope { return f.scope }

// Use returns the fixture's value for the current scope, creating it if necessary. If setup
// fails, the current test fails and exits immediately. A failed module-scoped setup is not
// retried; later tests in the same module fail with the same error.
func (c *Context) Use(f *Fixture) interface{} {
	owner := c
	if f.scope == ScopeModule {
		owner = c.moduleOwner()
	}
	state, ok := owner.fixtures[f]
	if !ok {
		c.Debug("setting up %s fixture %q", f.scope, f.name)
		value, err := f.setup(c)
		state = fixtureState{value: value, err: err}
		if owner.fixtures == nil {
			owner.fixtures = make(map[*Fixture]fixtureState)
		}
		owner.fixtures[f] = state
		if err == nil && f.teardown != nil {
			owner.Defer(func() {
				owner.Debug("tearing down %s fixture %q", f.scope, f.name)
				f.teardown(value)
			})
		}
	}
	if state.err != nil {
		c.Errorf("fixture %q could not be set up: %s", f.name, state.err)
		c.FailNow()
	}
	return state.value
}
