// Package domain defines the core business entities for droppath.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Platform: The host operating system kind used for path conversion
//   - Target: A local path queued for scanning
//   - Drop: One batch of dropped URLs and the paths they resolved to
//   - AppSettings: User-configurable behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
