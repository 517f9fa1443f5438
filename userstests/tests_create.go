package userstests

import (
	"net/http"

	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoCreateTests(t *T) {
	t.Run("new user", func(t *T) {
		payload := t.Payload(fixtures.NewUser).WithEmail(fixtures.UniqueEmail())

		resp := t.Post(servicedef.UsersPath, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		created, ok := servicedef.UserFromValue(resp.Body)
		require.True(t, ok, "expected a user object, got: %s", resp.BodyString())
		assert.Equal(t, ExpectedCreatedName, created.Name)
		assert.Equal(t, payload.GetString(servicedef.PropEmail), created.Email)
		require.NotZero(t, created.ID, "created user has no id")

		// The created record is not stored, so read the seeded user just before it instead.
		resp = t.Get(servicedef.UserPath(created.ID - CreatedIDOffset))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, SeedUserBeforeCreatedID, resp.Field(servicedef.PropName).StringValue())
	})
}
