package userstests

import (
	"net/http"

	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoUpdateTests(t *T) {
	t.Run("existing user", func(t *T) {
		payload := t.Payload(fixtures.UpdateExistingUser).WithEmail(fixtures.UniqueEmail())

		resp := t.Put(servicedef.UserPath(UpdatedUserID), payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assertEchoesPayload(t, payload, resp)
		assert.Equal(t, UpdatedUserID, resp.Field(servicedef.PropID).IntValue())
	})
}
