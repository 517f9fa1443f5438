package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idOf(path ...string) TestID {
	return TestID{Path: path}
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	var f RegexFilters
	assert.False(t, f.IsDefined())
	assert.True(t, f.AsFilter(idOf("users", "read", "list users")))
}

func TestMustMatchIsAppliedPerPathElement(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("users/create/new"))

	assert.True(t, f.AsFilter(idOf("users")))
	assert.True(t, f.AsFilter(idOf("users", "create")))
	assert.True(t, f.AsFilter(idOf("users", "create", "new user")))
	assert.True(t, f.AsFilter(idOf("users", "create", "new user", "follow-up read")))
	assert.False(t, f.AsFilter(idOf("users", "delete")))
	assert.False(t, f.AsFilter(idOf("users", "create", "other")))
}

func TestMustNotMatchExcludesSubtree(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("create"))

	assert.False(t, f.AsFilter(idOf("users", "create")))
	assert.False(t, f.AsFilter(idOf("users", "create", "new user")))
	assert.True(t, f.AsFilter(idOf("users", "update")))
}

func TestInvalidRegex(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("users/("))
	assert.False(t, list.IsDefined())
}

func TestRegexListString(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("read"))
	require.NoError(t, list.Set("delete"))
	assert.Equal(t, `"read" or "delete"`, list.String())
}
