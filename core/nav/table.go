package nav

import (
	"fmt"
	"strings"
)

// Table is an immutable, validated route tree. Safe for concurrent use.
type Table[T any] struct {
	roots  []*record[T]
	byName map[string]*record[T]
	order  []*record[T]
}

// Match is the result of resolving a path.
type Match[T any] struct {
	// Path is the normalized requested path, without the controller base.
	Path string
	// Params holds captured ":name" and catch-all segments.
	Params map[string]string

	chain []*record[T]
}

// Route describes the matched leaf.
func (m *Match[T]) Route() RouteInfo {
	return m.chain[len(m.chain)-1].info
}

// Name is the matched leaf's name.
func (m *Match[T]) Name() string {
	return m.Route().Name
}

// Matched lists every route of the match from the outermost parent to the leaf.
func (m *Match[T]) Matched() []RouteInfo {
	out := make([]RouteInfo, len(m.chain))
	for i, r := range m.chain {
		out[i] = r.info
	}
	return out
}

// NewTable validates routes and builds a table. Validation rejects
// malformed paths, duplicate endpoint paths, duplicate names, and leaves
// without a component.
func NewTable[T any](routes ...Route[T]) (*Table[T], error) {
	t := &Table[T]{byName: make(map[string]*record[T])}

	roots, err := t.build(routes, "", 0)
	if err != nil {
		return nil, err
	}
	t.roots = roots

	seen := make(map[string]*record[T])
	for _, r := range t.order {
		if !r.endpoint {
			continue
		}
		key := patternKey(r.segments)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q (routes %q and %q)", ErrDuplicatePath, r.info.Path, prev.info.Name, r.info.Name)
		}
		seen[key] = r
	}

	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable[T any](routes ...Route[T]) *Table[T] {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table[T]) build(routes []Route[T], parent string, depth int) ([]*record[T], error) {
	recs := make([]*record[T], 0, len(routes))

	for _, rt := range routes {
		if depth == 0 && !strings.HasPrefix(rt.Path, "/") {
			return nil, fmt.Errorf("%w: top-level path %q must start with /", ErrInvalidPath, rt.Path)
		}
		if rt.Component == nil && len(rt.Children) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNilComponent, rt.Path)
		}

		full := joinPath(parent, rt.Path)
		segs, err := parseSegments(full)
		if err != nil {
			return nil, err
		}

		r := &record[T]{
			info: RouteInfo{
				Path:   full,
				Name:   rt.Name,
				Depth:  depth,
				Layout: len(rt.Children) > 0,
				Meta:   cloneMeta(rt.Meta),
			},
			component: rt.Component,
			segments:  segs,
		}

		if rt.Name != "" {
			if _, ok := t.byName[rt.Name]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateName, rt.Name)
			}
			t.byName[rt.Name] = r
		}
		t.order = append(t.order, r)

		if len(rt.Children) > 0 {
			children, err := t.build(rt.Children, full, depth+1)
			if err != nil {
				return nil, err
			}
			r.children = children
		}

		// A layout is reachable on its own only when it renders something
		// and no descendant already claims its path.
		r.endpoint = len(r.children) == 0 || (r.component != nil && !claims(r.children, patternKey(segs)))

		recs = append(recs, r)
	}

	return recs, nil
}

func claims[T any](recs []*record[T], key string) bool {
	for _, r := range recs {
		if r.endpoint && patternKey(r.segments) == key {
			return true
		}
		if claims(r.children, key) {
			return true
		}
	}
	return false
}

// Resolve matches path against the table. Entries are tried in declaration
// order, children before their parent, and the first match wins.
func (t *Table[T]) Resolve(path string) (*Match[T], error) {
	clean := cleanPath(stripQuery(path))
	parts := splitPath(clean)

	chain, params := find(t.roots, parts)
	if chain == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, clean)
	}
	return &Match[T]{Path: clean, Params: params, chain: chain}, nil
}

func find[T any](recs []*record[T], parts []string) ([]*record[T], map[string]string) {
	for _, r := range recs {
		if len(r.children) > 0 {
			if chain, params := find(r.children, parts); chain != nil {
				return append([]*record[T]{r}, chain...), params
			}
		}
		if !r.endpoint {
			continue
		}
		if params, ok := r.match(parts); ok {
			return []*record[T]{r}, params
		}
	}
	return nil, nil
}

// ByName looks up a route by name.
func (t *Table[T]) ByName(name string) (RouteInfo, bool) {
	r, ok := t.byName[name]
	if !ok {
		return RouteInfo{}, false
	}
	return r.info, true
}

// Href builds the path of a named route.
func (t *Table[T]) Href(name string, params map[string]string) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return r.build(params)
}

// Routes lists every route in declaration order, parents before children.
func (t *Table[T]) Routes() []RouteInfo {
	out := make([]RouteInfo, len(t.order))
	for i, r := range t.order {
		out[i] = r.info
		out[i].Meta = cloneMeta(r.info.Meta)
	}
	return out
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}
