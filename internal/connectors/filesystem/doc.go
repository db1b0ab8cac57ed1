// Package filesystem keeps scan targets in step with the local
// filesystem. A Watcher observes the parent directory of every target
// and drops targets that are removed or renamed away.
package filesystem
