package urlpath

import (
	"fmt"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// Helper holds an ordered list of URLs and the platform they are converted for.
// A Helper is immutable once constructed and safe to share.
type Helper struct {
	urls     []string
	platform domain.Platform
}

// Option configures a Helper.
type Option func(*Helper)

// WithPlatform sets the platform used by LocalFilePaths.
// Without it the running system's platform is used.
func WithPlatform(p domain.Platform) Option {
	return func(h *Helper) {
		h.platform = p
	}
}

// FromSingle creates a Helper holding exactly one URL.
func FromSingle(rawURL string, opts ...Option) *Helper {
	return newHelper([]string{rawURL}, opts)
}

// FromMany creates a Helper holding urls in order.
// The slice is copied; a nil or empty slice yields an empty Helper.
func FromMany(urls []string, opts ...Option) *Helper {
	return newHelper(append([]string(nil), urls...), opts)
}

// FromStringers creates a Helper from URL-like values such as *url.URL,
// storing the String form of each.
func FromStringers[S fmt.Stringer](values []S, opts ...Option) *Helper {
	urls := make([]string, len(values))
	for i, v := range values {
		urls[i] = v.String()
	}
	return newHelper(urls, opts)
}

func newHelper(urls []string, opts []Option) *Helper {
	h := &Helper{
		urls:     urls,
		platform: domain.CurrentPlatform(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AreAllLocal reports whether every URL starts with "file:///".
// It is true for an empty Helper.
func (h *Helper) AreAllLocal() bool {
	for _, u := range h.urls {
		if !IsLocal(u) {
			return false
		}
	}
	return true
}

// LocalFilePaths converts every URL with LocalFilePath, one path per URL in
// the same order. The first decoding failure is returned as is.
func (h *Helper) LocalFilePaths() ([]string, error) {
	paths := make([]string, 0, len(h.urls))
	for _, u := range h.urls {
		p, err := LocalFilePath(u, h.platform)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// URLs returns a copy of the stored URLs.
func (h *Helper) URLs() []string {
	return append([]string{}, h.urls...)
}

// Len returns the number of stored URLs.
func (h *Helper) Len() int {
	return len(h.urls)
}

// Platform returns the platform used for conversion.
func (h *Helper) Platform() domain.Platform {
	return h.platform
}
