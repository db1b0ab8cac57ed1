// Package memory provides in-memory implementations of the driven store
// interfaces. They back the --memory flag and service tests.
package memory
