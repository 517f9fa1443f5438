package userstests

// The demo API accepts writes but never stores them, and it answers every create with the same
// id. The scenarios depend on that behavior in the places named below.
const (
	// ExpectedCreatedName is the name in the new_user payload, which the API echoes back.
	ExpectedCreatedName = "Kiran Kumar"

	// CreatedIDOffset is subtracted from the id returned by a create to find a user that
	// really exists. The created record itself is never persisted, so reading it back fails.
	CreatedIDOffset = 1

	// SeedUserBeforeCreatedID is the name of the last seeded user, whose id is one less than
	// the id the API assigns to every created user.
	SeedUserBeforeCreatedID = "Clementina DuBuque"

	// ReadUserID is the seeded user that the single-read scenario fetches.
	ReadUserID = 1

	// UpdatedUserID is the seeded user that the update scenario replaces.
	UpdatedUserID = 2

	// DeletedUserID is the seeded user that the delete scenario removes. Deleting it has no
	// lasting effect, so the scenarios can run in any order.
	DeletedUserID = 1
)
