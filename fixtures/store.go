package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// Names of the payload templates in the default fixture data.
const (
	NewUser            = "new_user"
	UpdateExistingUser = "update_existing_user"
)

// RequiredFields must be present in every payload template.
var RequiredFields = []string{"name", "username", "email"}

var (
	// ErrFixtureNotFound is returned by Store.Payload for a name that is not in the data.
	ErrFixtureNotFound = errors.New("fixture not found")

	// ErrInvalidFixture is returned when fixture data is malformed or a template is missing a
	// required field.
	ErrInvalidFixture = errors.New("invalid fixture data")
)

//go:embed users.yaml
var defaultData []byte

// Store holds named payload templates.
type Store struct {
	source    string
	templates map[string]ldvalue.Value
}

// Default returns a Store with the built-in user payload templates.
func Default() *Store {
	s, err := parse(defaultData, "built-in users.yaml")
	if err != nil {
		panic(err) // the embedded file is part of the source tree
	}
	return s
}

// Load reads fixture data from a YAML or JSON file. The top level must be a mapping from
// fixture name to an object.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read fixture data: %w", err)
	}
	return parse(data, path)
}

// Parse reads fixture data from YAML or JSON text.
func Parse(data []byte) (*Store, error) {
	return parse(data, "fixture data")
}

func parse(data []byte, source string) (*Store, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w in %s: %s", ErrInvalidFixture, source, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w in %s: no fixtures defined", ErrInvalidFixture, source)
	}
	s := &Store{source: source, templates: make(map[string]ldvalue.Value, len(raw))}
	for name, item := range raw {
		if _, ok := item.(map[string]interface{}); !ok {
			return nil, fmt.Errorf("%w in %s: %q is not an object", ErrInvalidFixture, source, name)
		}
		v := ldvalue.CopyArbitraryValue(item)
		for _, field := range RequiredFields {
			if v.GetByKey(field).IsNull() {
				return nil, fmt.Errorf("%w in %s: %q has no %q field", ErrInvalidFixture, source, name, field)
			}
		}
		s.templates[name] = v
	}
	return s, nil
}

// Payload returns the template with the given name. The caller may derive new payloads from it
// freely; nothing it does is visible to other callers.
func (s *Store) Payload(name string) (Payload, error) {
	v, ok := s.templates[name]
	if !ok {
		return Payload{}, fmt.Errorf("%w: %q in %s", ErrFixtureNotFound, name, s.source)
	}
	return newPayload(v), nil
}

// Names returns the names of all templates, sorted.
func (s *Store) Names() []string {
	ret := make([]string, 0, len(s.templates))
	for name := range s.templates {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Source describes where the data was loaded from.
func (s *Store) Source() string {
	return s.source
}
