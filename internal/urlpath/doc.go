// Package urlpath converts dropped URLs into local filesystem paths.
//
// A Helper wraps one URL or an ordered list of URLs, typically the payload
// of a drag-and-drop event, and answers two questions: whether every URL
// references a local file, and which local paths the URLs stand for.
//
// Conversion strips the "file://" prefix at a fixed cut position,
// percent-decodes the remainder, and on Windows turns backslashes into
// forward slashes. The platform is always supplied by the caller (or
// defaults to the running system), so both branches are testable anywhere.
//
// The package is pure: no I/O, no shared state, and Helper values are
// immutable after construction.
package urlpath
