// Package client is the HTTP test client used by every scenario to talk to the users API.
//
// It translates four verbs (Get, Post, Put, Delete) into requests against a fixed base URL plus
// a relative path, and hands back the response without judging it. Deciding whether a status
// or body is correct is the job of the tests.
package client
