package userstests

import (
	"github.com/apitesting/users-api-tests/client"
	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/framework"
)

// ModuleName is the first element of every test ID in the suite.
const ModuleName = "users"

// Environment is what the suite needs from the runner: a way to build the API client and a
// source of request payloads.
type Environment struct {
	// NewClient creates the API client. The suite calls it at most once per run.
	NewClient func() (*client.Client, error)

	// LoadFixtures returns the payload templates. If nil, the built-in templates are used.
	LoadFixtures func() (*fixtures.Store, error)

	clientFixture   *framework.Fixture
	fixturesFixture *framework.Fixture
	payloadsFixture *framework.Fixture
}

// testPayloads tracks the payload copies handed to one test.
type testPayloads struct {
	context *framework.Context
	names   []string
}

// NewEnvironment returns an Environment whose client talks to baseURL.
func NewEnvironment(baseURL string, opts ...client.Option) *Environment {
	return &Environment{
		NewClient: func() (*client.Client, error) {
			return client.New(baseURL, opts...)
		},
	}
}

func (env *Environment) init() {
	env.clientFixture = framework.NewFixture(
		"api client",
		framework.ScopeModule,
		func(c *framework.Context) (interface{}, error) {
			apiClient, err := env.NewClient()
			if err != nil {
				return nil, err
			}
			c.Debug("created API client for %s", apiClient.BaseURL())
			return apiClient, nil
		},
		func(value interface{}) {
			value.(*client.Client).Close()
		},
	)
	env.fixturesFixture = framework.NewFixture(
		"fixture data",
		framework.ScopeModule,
		func(c *framework.Context) (interface{}, error) {
			if env.LoadFixtures == nil {
				return fixtures.Default(), nil
			}
			store, err := env.LoadFixtures()
			if err != nil {
				return nil, err
			}
			c.Debug("loaded fixture data from %s", store.Source())
			return store, nil
		},
		nil,
	)
	env.payloadsFixture = framework.NewFixture(
		"test payloads",
		framework.ScopeTest,
		func(c *framework.Context) (interface{}, error) {
			return &testPayloads{context: c}, nil
		},
		func(value interface{}) {
			p := value.(*testPayloads)
			p.context.Debug("payloads handed out: %v", p.names)
		},
	)
}

// RunTestSuite runs every scenario against the API described by env.
func RunTestSuite(
	env *Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env.init()
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		c.RunModule(ModuleName, func(c *framework.Context) {
			t := newTestScope(c, env)

			t.Run("read", DoReadTests)
			t.Run("create", DoCreateTests)
			t.Run("update", DoUpdateTests)
			t.Run("delete", DoDeleteTests)
			t.Run("fixtures", DoFixtureTests)
		})
	})
}
