package fixtures

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultEmailDomain is the domain used by UniqueEmail.
const DefaultEmailDomain = "gmail.com"

const uniqueEmailIDLength = 8

// UniqueEmail returns an address whose local part is the first 8 hex digits of a random UUID,
// such as "3f2a9c1e@gmail.com". It is used to avoid collisions on the shared demo API.
func UniqueEmail() string {
	return UniqueEmailWithDomain(DefaultEmailDomain)
}

// UniqueEmailWithDomain is like UniqueEmail with a different domain.
func UniqueEmailWithDomain(domain string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:uniqueEmailIDLength] + "@" + domain
}
