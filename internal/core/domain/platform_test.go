package domain

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformFromGOOS(t *testing.T) {
	assert.Equal(t, PlatformWindows, PlatformFromGOOS("windows"))
	assert.Equal(t, PlatformOther, PlatformFromGOOS("linux"))
	assert.Equal(t, PlatformOther, PlatformFromGOOS("darwin"))
	assert.Equal(t, PlatformOther, PlatformFromGOOS(""))
}

func TestCurrentPlatform(t *testing.T) {
	assert.Equal(t, runtime.GOOS == "windows", CurrentPlatform().IsWindows())
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input string
		want  Platform
	}{
		{"windows", PlatformWindows},
		{"Windows", PlatformWindows},
		{" win ", PlatformWindows},
		{"linux", PlatformOther},
		{"unix", PlatformOther},
		{"darwin", PlatformOther},
		{"other", PlatformOther},
		{"auto", CurrentPlatform()},
		{"", CurrentPlatform()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatform_Invalid(t *testing.T) {
	_, err := ParsePlatform("amiga")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "amiga")
}

func TestPlatform_String(t *testing.T) {
	assert.Equal(t, "windows", PlatformWindows.String())
	assert.Equal(t, "other", PlatformOther.String())
	assert.Equal(t, "unknown", Platform(42).String())
}
