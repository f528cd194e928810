package files

import "strings"

const (
	Separator = "/"
	RootPath  = Separator
)

func splitSegments(p string) []string {
	return strings.FieldsFunc(p, func(r rune) bool {
		return r == '/'
	})
}

// ParentOf returns the parent of p. Repeated and leading separators are
// ignored, and root as well as a single-segment path resolve to root.
func ParentOf(p string) string {
	segments := splitSegments(p)
	if len(segments) < 2 {
		return RootPath
	}
	var sb strings.Builder
	for _, segment := range segments[:len(segments)-1] {
		sb.WriteString(Separator)
		sb.WriteString(segment)
	}
	return sb.String()
}

// LastSegmentOf returns the final non-empty segment of p,
// or p itself when it has none (e.g. "/" or "").
func LastSegmentOf(p string) string {
	segments := splitSegments(p)
	if len(segments) == 0 {
		return p
	}
	return segments[len(segments)-1]
}

// IsHidden reports whether the final segment of p is a dot-file name.
func IsHidden(p string) bool {
	return strings.HasPrefix(LastSegmentOf(p), ".")
}
