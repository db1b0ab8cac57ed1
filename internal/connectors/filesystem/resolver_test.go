package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/urlpath"
)

func TestTargetItem(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want domain.DropItem
	}{
		{
			name: "file URL passes through",
			arg:  "file:///Users/test/documents/file.txt",
			want: domain.DropItem{URL: "file:///Users/test/documents/file.txt"},
		},
		{
			name: "encoded file URL passes through",
			arg:  "file:///Users/test/my%20documents",
			want: domain.DropItem{URL: "file:///Users/test/my%20documents"},
		},
		{
			name: "remote URL passes through",
			arg:  "https://example.com/a.txt",
			want: domain.DropItem{URL: "https://example.com/a.txt"},
		},
		{
			name: "absolute path is kept",
			arg:  "/Users/test/my documents/file.txt",
			want: domain.DropItem{
				URL:  "file:///Users/test/my%20documents/file.txt",
				Path: "/Users/test/my documents/file.txt",
			},
		},
		{
			name: "root path is kept",
			arg:  "/",
			want: domain.DropItem{URL: "file:///", Path: "/"},
		},
		{
			name: "one letter path is kept",
			arg:  "/a",
			want: domain.DropItem{URL: "file:///a", Path: "/a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetItem(tt.arg))
		})
	}
}

func TestTargetItem_RelativePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	want := filepath.ToSlash(filepath.Join(wd, "relative", "dir"))

	got := TargetItem("relative/dir")

	assert.Equal(t, want, got.Path)
	assert.True(t, urlpath.IsLocal(got.URL))
}

func TestTargetItems(t *testing.T) {
	got := TargetItems([]string{"file:///a", "/b"})

	assert.Equal(t, []domain.DropItem{
		{URL: "file:///a"},
		{URL: "file:///b", Path: "/b"},
	}, got)
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"http://x", true},
		{"git+ssh://host/repo", true},
		{"file:///a", true},
		{"/abs/path", false},
		{"C:/Users", false},
		{"relative", false},
		{"1http://x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeURL(tt.input))
		})
	}
}
