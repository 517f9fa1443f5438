// Package fixtures loads the request payload templates that the scenarios send, and generates
// the unique values that are substituted into them.
package fixtures
