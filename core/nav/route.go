package nav

import (
	"fmt"
	"maps"
	"strings"
)

// Route declares a binding from a path pattern to a component.
//
// Top-level paths must start with "/". A child path starting with "/" is
// absolute; otherwise it is appended to the parent's path, and an empty child
// path matches the parent's path itself. Patterns may contain ":name"
// parameter segments and a final "*" or "*name" catch-all segment.
type Route[T any] struct {
	Path      string
	Name      string
	Component Component[T]
	Children  []Route[T]
	Meta      map[string]string
}

// RouteInfo describes a route of a built table.
type RouteInfo struct {
	Path   string            `json:"path"`
	Name   string            `json:"name,omitempty"`
	Depth  int               `json:"depth"`
	Layout bool              `json:"layout"`
	Meta   map[string]string `json:"meta,omitempty"`
}

type segmentKind uint8

const (
	segStatic segmentKind = iota
	segParam
	segWildcard
)

type segment struct {
	kind  segmentKind
	value string // literal for static, name for param/wildcard
}

type record[T any] struct {
	info      RouteInfo
	component Component[T]
	segments  []segment
	children  []*record[T]
	endpoint  bool
}

// joinPath builds a child's full path.
func joinPath(parent, child string) string {
	switch {
	case strings.HasPrefix(child, "/"):
		return cleanPath(child)
	case child == "":
		return cleanPath(parent)
	case parent == "/" || parent == "":
		return cleanPath("/" + child)
	default:
		return cleanPath(parent + "/" + child)
	}
}

// cleanPath collapses repeated slashes and drops the trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	parts := splitPath(p)
	if len(parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(parts, "/")
}

func splitPath(p string) []string {
	raw := strings.Split(p, "/")
	parts := raw[:0]
	for _, s := range raw {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

func parseSegments(full string) ([]segment, error) {
	parts := splitPath(full)
	segs := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for i, p := range parts {
		switch {
		case strings.HasPrefix(p, ":"):
			name := p[1:]
			if name == "" {
				return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPath, full)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w: parameter %q repeated in %q", ErrInvalidPath, name, full)
			}
			seen[name] = true
			segs = append(segs, segment{kind: segParam, value: name})
		case strings.HasPrefix(p, "*"):
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: catch-all must be the last segment in %q", ErrInvalidPath, full)
			}
			name := p[1:]
			if name == "" {
				name = "*"
			}
			segs = append(segs, segment{kind: segWildcard, value: name})
		default:
			segs = append(segs, segment{kind: segStatic, value: p})
		}
	}
	return segs, nil
}

// patternKey identifies structurally identical patterns: "/a/:id" and
// "/a/:slug" share a key.
func patternKey(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		switch s.kind {
		case segParam:
			b.WriteByte(':')
		case segWildcard:
			b.WriteByte('*')
		default:
			b.WriteString(strings.ToLower(s.value))
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// match reports whether the request segments fit r's pattern and returns
// the captured parameters. Static segments compare case-insensitively.
func (r *record[T]) match(parts []string) (map[string]string, bool) {
	var params map[string]string
	set := func(k, v string) {
		if params == nil {
			params = make(map[string]string)
		}
		params[k] = v
	}

	for i, s := range r.segments {
		if s.kind == segWildcard {
			set(s.value, strings.Join(parts[i:], "/"))
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch s.kind {
		case segParam:
			set(s.value, parts[i])
		default:
			if !strings.EqualFold(s.value, parts[i]) {
				return nil, false
			}
		}
	}

	if len(parts) != len(r.segments) {
		return nil, false
	}
	return params, true
}

// build renders r's pattern with params.
func (r *record[T]) build(params map[string]string) (string, error) {
	parts := make([]string, 0, len(r.segments))
	for _, s := range r.segments {
		switch s.kind {
		case segStatic:
			parts = append(parts, s.value)
		default:
			v, ok := params[s.value]
			if !ok || (v == "" && s.kind == segParam) {
				return "", fmt.Errorf("%w: %q for route %q", ErrMissingParam, s.value, r.info.Name)
			}
			if v != "" {
				parts = append(parts, strings.Trim(v, "/"))
			}
		}
	}
	return cleanPath("/" + strings.Join(parts, "/")), nil
}

func cloneMeta(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}
