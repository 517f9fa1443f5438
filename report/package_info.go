// Package report decides where a run's result report goes and writes it.
//
// The report location is settled before the first test starts (NewSettings) and passed along
// as an immutable value.
package report
