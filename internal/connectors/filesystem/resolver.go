package filesystem

import (
	"path/filepath"

	"github.com/custodia-labs/droppath/internal/core/domain"
	"github.com/custodia-labs/droppath/internal/urlpath"
)

// TargetItem converts a command-line argument into a drop item.
// URLs pass through for conversion; anything else is treated as a local
// path, made absolute and kept as the item's path. The item's URL is
// the path's file URL, for the drop record only.
func TargetItem(arg string) domain.DropItem {
	if urlpath.IsLocal(arg) || looksLikeURL(arg) {
		return domain.DropItem{URL: arg}
	}
	if abs, err := filepath.Abs(arg); err == nil {
		arg = abs
	}
	path := filepath.ToSlash(arg)
	return domain.DropItem{URL: urlpath.FromLocalPath(path), Path: path}
}

// TargetItems applies TargetItem to every argument.
func TargetItems(args []string) []domain.DropItem {
	items := make([]domain.DropItem, len(args))
	for i, arg := range args {
		items[i] = TargetItem(arg)
	}
	return items
}

// looksLikeURL reports whether s starts with a scheme followed by "://".
func looksLikeURL(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		case r == ':' && i > 0:
			return len(s) >= i+3 && s[i+1:i+3] == "//"
		default:
			return false
		}
	}
	return false
}
