// Package userstests contains the scenarios for the users API, and the T type that they run
// with.
//
// All scenarios in one run share a single API client, which is a module-scoped fixture: it is
// created the first time any test asks for it and closed when the "users" module ends. Request
// payloads come from a fixture store that hands each test its own copy.
package userstests
