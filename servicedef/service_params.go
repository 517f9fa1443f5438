package servicedef

import (
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultBaseURL is the public demo API that the suite runs against unless told otherwise.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/"

// UsersPath is the collection resource for users, relative to the base URL.
const UsersPath = "users"

// UserPath returns the path of a single user resource.
func UserPath(id int) string {
	return UsersPath + "/" + strconv.Itoa(id)
}

// Property names that every user payload carries.
const (
	PropID       = "id"
	PropName     = "name"
	PropUsername = "username"
	PropEmail    = "email"
)

// User is the subset of a user record that the tests look at. The demo API also returns
// address, phone, website and company, which are ignored here.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserFromValue reads the known properties of a user object. Missing properties are left at
// their zero values; ok is false if v is not an object.
func UserFromValue(v ldvalue.Value) (u User, ok bool) {
	if v.Type() != ldvalue.ObjectType {
		return User{}, false
	}
	return User{
		ID:       v.GetByKey(PropID).IntValue(),
		Name:     v.GetByKey(PropName).StringValue(),
		Username: v.GetByKey(PropUsername).StringValue(),
		Email:    v.GetByKey(PropEmail).StringValue(),
	}, true
}
