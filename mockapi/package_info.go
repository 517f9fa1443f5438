// Package mockapi imitates the public demo API's users resource, so that the suite and its own
// tests can run without network access. It is not a general-purpose mock: it only reproduces
// what the demo API visibly does.
package mockapi
