package urlpath

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/droppath/internal/core/domain"
)

// LocalPrefix is the prefix every local file URL must start with.
const LocalPrefix = "file:///"

const (
	// minCutLength is the length a URL must exceed before its prefix is cut.
	minCutLength = 9

	// driveColonIndex is where a drive-letter colon sits in "file:///C:/...".
	driveColonIndex = 9

	// cutDrive strips "file:///" and leaves "C:/...".
	cutDrive = 8

	// cutPlain strips "file://" and leaves "/...".
	cutPlain = 7
)

var errInvalidUTF8 = errors.New("escapes decode to invalid UTF-8")

// IsLocal reports whether rawURL references a local file.
func IsLocal(rawURL string) bool {
	return strings.HasPrefix(rawURL, LocalPrefix)
}

// LocalFilePath converts one URL into a local filesystem path for platform p.
//
// URLs longer than nine characters lose their scheme prefix: eight
// characters when a drive-letter colon sits at index 9 ("file:///C:/x"
// becomes "C:/x"), seven otherwise ("file:///x/y" becomes "/x/y"). Shorter
// strings are decoded as they are. Indexes count Unicode code points.
//
// The remainder is percent-decoded; a malformed escape yields an
// *EncodingError. On Windows every backslash is then replaced with "/".
func LocalFilePath(rawURL string, p domain.Platform) (string, error) {
	pure := rawURL
	if runes := []rune(rawURL); len(runes) > minCutLength {
		cut := cutPlain
		if runes[driveColonIndex] == ':' {
			cut = cutDrive
		}
		pure = string(runes[cut:])
	}

	decoded, err := decodeComponent(pure)
	if err != nil {
		return "", &EncodingError{URL: rawURL, Err: err}
	}

	if p.IsWindows() {
		decoded = strings.ReplaceAll(decoded, `\`, "/")
	}
	return decoded, nil
}

// FromLocalPath builds the file URL for an already-decoded local path.
// Drive paths such as "C:/x" gain a leading slash ("file:///C:/x").
func FromLocalPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}

// decodeComponent reverses URI component escaping. "+" is left alone and
// every "%XX" becomes the byte it names.
func decodeComponent(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", err
	}
	// Escapes must spell out whole UTF-8 sequences. Input that was already
	// invalid before decoding is passed through untouched.
	if utf8.ValidString(s) && !utf8.ValidString(decoded) {
		return "", errInvalidUTF8
	}
	return decoded, nil
}
