package userstests

import (
	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

const uniqueEmailPattern = `^[0-9a-f]{8}@gmail\.com$`

// DoFixtureTests checks the test-data helpers that the other scenarios rely on. They make no
// requests.
func DoFixtureTests(t *T) {
	t.Run("unique emails", func(t *T) {
		first, second := fixtures.UniqueEmail(), fixtures.UniqueEmail()
		t.Debug("generated %s and %s", first, second)
		assert.NotEqual(t, first, second)
		assert.Regexp(t, uniqueEmailPattern, first)
		assert.Regexp(t, uniqueEmailPattern, second)
	})

	t.Run("payload copies are independent", func(t *T) {
		original := t.Payload(fixtures.NewUser)
		templateEmail := original.GetString(servicedef.PropEmail)
		email := fixtures.UniqueEmail()
		changed := original.WithEmail(email)

		again := t.Payload(fixtures.NewUser)
		assert.Equal(t, email, changed.GetString(servicedef.PropEmail))
		assert.NotEqual(t, email, again.GetString(servicedef.PropEmail))
		assert.Equal(t, templateEmail, again.GetString(servicedef.PropEmail))
		assert.Equal(t, templateEmail, original.GetString(servicedef.PropEmail))
	})
}
