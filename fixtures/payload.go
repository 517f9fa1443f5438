package fixtures

import (
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Payload is a request body template: a JSON object mapping field names to values.
//
// Payload values are immutable. With and WithEmail return a new Payload and leave the receiver
// as it was, so a test that substitutes a field cannot change what another test sees.
type Payload struct {
	value ldvalue.Value
}

func newPayload(v ldvalue.Value) Payload {
	return Payload{value: v}
}

// Get returns the value of a field, or a null value if the field is absent.
func (p Payload) Get(key string) ldvalue.Value {
	return p.value.GetByKey(key)
}

// GetString returns a string field, or "" if the field is absent or not a string.
func (p Payload) GetString(key string) string {
	return p.value.GetByKey(key).StringValue()
}

// Keys returns the field names in sorted order.
func (p Payload) Keys() []string {
	keys := p.value.Keys()
	sort.Strings(keys)
	return keys
}

// With returns a copy of the payload with one field set.
func (p Payload) With(key string, value ldvalue.Value) Payload {
	b := ldvalue.ObjectBuild()
	for _, k := range p.value.Keys() {
		if k != key {
			b.Set(k, p.value.GetByKey(k))
		}
	}
	b.Set(key, value)
	return newPayload(b.Build())
}

// WithEmail returns a copy of the payload with the "email" field set.
func (p Payload) WithEmail(email string) Payload {
	return p.With("email", ldvalue.String(email))
}

// Value returns the payload as an ldvalue.Value.
func (p Payload) Value() ldvalue.Value {
	return p.value
}

// AsMap returns the payload as a new map of plain Go values.
func (p Payload) AsMap() map[string]interface{} {
	m, _ := p.value.AsArbitraryValue().(map[string]interface{})
	return m
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p Payload) String() string {
	return p.value.JSONString()
}
