// Package iri resolves relative IRI references against a base IRI per
// RFC 3986 §5.3, the semantics spec.md's relative-IRI-resolution semantic
// action requires.
package iri

import (
	"fmt"
	"strings"
)

// Error reports that a reference could not be resolved against base,
// typically because base is empty and ref is relative.
type Error struct {
	Ref, Base string
	Line      int
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot resolve IRI reference %q against base %q at line %d", e.Ref, e.Base, e.Line)
}

// Resolve resolves ref against base. If ref is already absolute (has a
// scheme), it is returned unchanged. An empty base with a relative ref is
// an error: there is nothing to resolve against.
func Resolve(base, ref string, line int) (string, error) {
	if hasScheme(ref) {
		return ref, nil
	}
	if base == "" {
		return "", &Error{Ref: ref, Base: base, Line: line}
	}
	if ref == "" {
		return base, nil
	}

	switch {
	case strings.HasPrefix(ref, "#"):
		return stripAfter(base, "#") + ref, nil
	case strings.HasPrefix(ref, "?"):
		return stripAfter(stripAfter(base, "?"), "#") + ref, nil
	case strings.HasPrefix(ref, "//"):
		schemeEnd := strings.IndexByte(base, ':')
		if schemeEnd < 0 {
			return "", &Error{Ref: ref, Base: base, Line: line}
		}
		return base[:schemeEnd+1] + ref, nil
	case strings.HasPrefix(ref, "/"):
		return resolveAbsolutePath(base, ref, line)
	default:
		return resolveRelativePath(base, ref, line)
	}
}

func hasScheme(s string) bool {
	idx := strings.IndexByte(s, ':')
	if idx <= 0 {
		return false
	}
	for i := 0; i < idx; i++ {
		c := s[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isSchemeChar := isAlpha || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
		if i == 0 && !isAlpha {
			return false
		}
		if !isSchemeChar {
			return false
		}
	}
	return true
}

func stripAfter(s, sep string) string {
	if idx := strings.Index(s, sep); idx >= 0 {
		return s[:idx]
	}
	return s
}

func resolveAbsolutePath(base, ref string, line int) (string, error) {
	schemeEnd := strings.IndexByte(base, ':')
	if schemeEnd < 0 {
		return "", &Error{Ref: ref, Base: base, Line: line}
	}
	if schemeEnd+2 < len(base) && base[schemeEnd:schemeEnd+3] == "://" {
		authorityStart := schemeEnd + 3
		authorityEnd := len(base)
		if idx := strings.IndexAny(base[authorityStart:], "/?#"); idx >= 0 {
			authorityEnd = authorityStart + idx
		}
		return normalizePath(base[:authorityEnd] + ref), nil
	}
	return normalizePath(base[:schemeEnd+1] + ref), nil
}

func resolveRelativePath(base, ref string, line int) (string, error) {
	baseWithoutQF := stripAfter(stripAfter(base, "?"), "#")
	lastSlash := strings.LastIndex(baseWithoutQF, "/")
	var merged string
	if lastSlash >= 0 {
		merged = baseWithoutQF[:lastSlash+1] + ref
	} else {
		merged = baseWithoutQF + "/" + ref
	}
	return normalizePath(merged), nil
}

// normalizePath removes "." and ".." segments per RFC 3986 §5.2.4, leaving
// the scheme/authority prefix and any query/fragment untouched.
func normalizePath(uri string) string {
	schemeEnd := strings.IndexByte(uri, ':')
	if schemeEnd < 0 {
		return uri
	}

	var pathStart int
	if schemeEnd+2 < len(uri) && uri[schemeEnd:schemeEnd+3] == "://" {
		authorityStart := schemeEnd + 3
		slashIdx := strings.Index(uri[authorityStart:], "/")
		if slashIdx < 0 {
			return uri
		}
		pathStart = authorityStart + slashIdx
	} else {
		pathStart = schemeEnd + 1
	}

	prefix := uri[:pathStart]
	pathAndRest := uri[pathStart:]

	var path, queryAndFragment string
	if idx := strings.IndexAny(pathAndRest, "?#"); idx >= 0 {
		path, queryAndFragment = pathAndRest[:idx], pathAndRest[idx:]
	} else {
		path = pathAndRest
	}

	needsTrailingSlash := strings.HasSuffix(path, "/") ||
		strings.HasSuffix(path, "/.") ||
		strings.HasSuffix(path, "/..")

	var normalized []string
	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case ".":
		case "..":
			if len(normalized) > 1 && normalized[len(normalized)-1] != ".." {
				normalized = normalized[:len(normalized)-1]
			} else if len(normalized) == 1 && normalized[0] != "" {
				normalized = normalized[:len(normalized)-1]
			}
		default:
			normalized = append(normalized, segment)
		}
	}

	normalizedPath := strings.Join(normalized, "/")
	if needsTrailingSlash && !strings.HasSuffix(normalizedPath, "/") {
		normalizedPath += "/"
	}

	return prefix + normalizedPath + queryAndFragment
}
