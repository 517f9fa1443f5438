package userstests

import (
	"net/http"

	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoReadTests(t *T) {
	t.Run("list users", func(t *T) {
		resp := t.Get(servicedef.UsersPath)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		users := resp.Items()
		require.NotEmpty(t, users, "expected a non-empty array of users, got: %s", resp.BodyString())
		for i, u := range users {
			if !assert.Equal(t, ldvalue.ObjectType, u.Type(), "element %d is not an object", i) {
				continue
			}
			assert.Equal(t, ldvalue.NumberType, u.GetByKey(servicedef.PropID).Type(),
				"element %d has no numeric id", i)
		}
	})

	t.Run("single user", func(t *T) {
		resp := t.Get(servicedef.UserPath(ReadUserID))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		user, ok := servicedef.UserFromValue(resp.Body)
		require.True(t, ok, "expected a user object, got: %s", resp.BodyString())
		assert.Equal(t, ReadUserID, user.ID)
		assert.NotEmpty(t, user.Name)
	})
}
