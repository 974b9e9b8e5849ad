// Package errors provides the structured error type shared by the seqkit
// driver, capture-model guards and configuration layers.
//
// The lazy core in package seq never fails on its own account. Errors in
// this package describe misuse of single-use resources (a consumed step or
// pipeline), exclusive-access violations, cancelled runs, failing sinks and
// invalid configuration.
package errors
