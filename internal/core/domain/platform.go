package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies the kind of operating system a path is meant for.
// Only Windows changes how URLs are converted to paths.
type Platform int

const (
	// PlatformOther covers every non-Windows system.
	PlatformOther Platform = iota
	// PlatformWindows selects backslash-to-slash substitution.
	PlatformWindows
)

// PlatformAuto is the settings value that defers to the running system.
const PlatformAuto = "auto"

// CurrentPlatform returns the platform the binary is running on.
func CurrentPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// PlatformFromGOOS maps a GOOS value to a Platform.
func PlatformFromGOOS(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformOther
}

// ParsePlatform parses a user-supplied platform name.
// "auto" and the empty string resolve to CurrentPlatform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PlatformAuto:
		return CurrentPlatform(), nil
	case "windows", "win":
		return PlatformWindows, nil
	case "other", "unix", "linux", "darwin", "macos":
		return PlatformOther, nil
	default:
		return PlatformOther, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, s)
	}
}

// String returns the string representation.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsWindows reports whether p is PlatformWindows.
func (p Platform) IsWindows() bool {
	return p == PlatformWindows
}
