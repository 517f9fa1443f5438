package userstests

import (
	"net/http"

	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

func DoDeleteTests(t *T) {
	t.Run("existing user", func(t *T) {
		resp := t.Delete(servicedef.UserPath(DeletedUserID))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
