package dropzone

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/droppath/internal/connectors/filesystem"
	"github.com/custodia-labs/droppath/internal/core/domain"
)

// ParseDrop splits pasted text into drop items. Terminals deliver dropped
// files as shell-quoted paths or as file URLs separated by whitespace;
// both are accepted.
func ParseDrop(text string) []domain.DropItem {
	fields := splitFields(text)
	if len(fields) == 0 {
		return nil
	}
	return filesystem.TargetItems(fields)
}

// splitFields tokenises s the way a shell would for dropped paths.
// Backslash escapes only a following space, quote or backslash so that
// Windows paths survive unquoted.
func splitFields(s string) []string {
	var (
		fields  []string
		current strings.Builder
		quote   rune
		started bool
	)

	flush := func() {
		if started {
			fields = append(fields, current.String())
		}
		current.Reset()
		started = false
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			if quote == '"' && r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
				i++
				r = runes[i]
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			started = true
		case r == '\\' && i+1 < len(runes) && isEscapable(runes[i+1]):
			i++
			current.WriteRune(runes[i])
			started = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	result := fields[:0]
	for _, f := range fields {
		if f != "" {
			result = append(result, f)
		}
	}
	return result
}

func isEscapable(r rune) bool {
	switch r {
	case ' ', '\'', '"', '\\', '(', ')', '&', ';', '[', ']', '!', '$', '`':
		return true
	}
	return false
}
