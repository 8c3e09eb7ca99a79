package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/core/nav"
)

func page(name string) nav.Component[string] {
	return nav.Static(name)
}

func nestedRoutes() []nav.Route[string] {
	return []nav.Route[string]{
		{
			Path:      "/",
			Name:      "inApp",
			Component: page("layout"),
			Children: []nav.Route[string]{
				{Path: "", Name: "home", Component: page("home")},
				{Path: "/gender-detector", Name: "Gender Detector", Component: page("gender")},
				{Path: "/recognition", Name: "Face Recognition", Component: page("recognition")},
				{Path: "/geofencing", Name: "Geo Fencing", Component: page("geofencing")},
			},
		},
	}
}

func flatRoutes() []nav.Route[string] {
	return []nav.Route[string]{
		{Path: "/", Name: "home", Component: page("home")},
		{Path: "/gender-detector", Name: "gender", Component: page("gender")},
		{Path: "/recognition", Name: "recognition", Component: page("recognition")},
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("nested table", func(t *testing.T) {
		t.Parallel()

		table, err := nav.NewTable(nestedRoutes()...)
		require.NoError(t, err)

		routes := table.Routes()
		require.Len(t, routes, 5)
		assert.Equal(t, "inApp", routes[0].Name)
		assert.True(t, routes[0].Layout)
		assert.Equal(t, "/", routes[1].Path)
		assert.Equal(t, 1, routes[1].Depth)
		assert.Equal(t, "/geofencing", routes[4].Path)
	})

	t.Run("duplicate names", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(
			nav.Route[string]{Path: "/a", Name: "same", Component: page("a")},
			nav.Route[string]{Path: "/b", Name: "same", Component: page("b")},
		)
		assert.ErrorIs(t, err, nav.ErrDuplicateName)
	})

	t.Run("duplicate names across levels", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(
			nav.Route[string]{Path: "/a", Name: "home", Component: page("a"), Children: []nav.Route[string]{
				{Path: "b", Name: "home", Component: page("b")},
			}},
		)
		assert.ErrorIs(t, err, nav.ErrDuplicateName)
	})

	t.Run("duplicate paths after prefixing", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(
			nav.Route[string]{Path: "/users", Component: page("layout"), Children: []nav.Route[string]{
				{Path: "list", Name: "list", Component: page("list")},
			}},
			nav.Route[string]{Path: "/users/list", Name: "other", Component: page("other")},
		)
		assert.ErrorIs(t, err, nav.ErrDuplicatePath)
	})

	t.Run("parameter names do not make patterns distinct", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(
			nav.Route[string]{Path: "/u/:id", Name: "a", Component: page("a")},
			nav.Route[string]{Path: "/u/:slug", Name: "b", Component: page("b")},
		)
		assert.ErrorIs(t, err, nav.ErrDuplicatePath)
	})

	t.Run("invalid paths", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(nav.Route[string]{Path: "relative", Component: page("x")})
		assert.ErrorIs(t, err, nav.ErrInvalidPath)

		_, err = nav.NewTable(nav.Route[string]{Path: "/files/*/edit", Component: page("x")})
		assert.ErrorIs(t, err, nav.ErrInvalidPath)

		_, err = nav.NewTable(nav.Route[string]{Path: "/u/:", Component: page("x")})
		assert.ErrorIs(t, err, nav.ErrInvalidPath)
	})

	t.Run("leaf without component", func(t *testing.T) {
		t.Parallel()

		_, err := nav.NewTable(nav.Route[string]{Path: "/empty", Name: "empty"})
		assert.ErrorIs(t, err, nav.ErrNilComponent)
	})

	t.Run("must table panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			nav.MustTable(nav.Route[string]{Path: "nope", Component: page("x")})
		})
	})
}

func TestTableResolve(t *testing.T) {
	t.Parallel()

	nested := nav.MustTable(nestedRoutes()...)
	flat := nav.MustTable(flatRoutes()...)

	t.Run("nested root renders layout and home", func(t *testing.T) {
		t.Parallel()

		m, err := nested.Resolve("/")
		require.NoError(t, err)
		assert.Equal(t, "home", m.Name())

		matched := m.Matched()
		require.Len(t, matched, 2)
		assert.Equal(t, "inApp", matched[0].Name)
		assert.Equal(t, "home", matched[1].Name)
	})

	t.Run("nested absolute child", func(t *testing.T) {
		t.Parallel()

		m, err := nested.Resolve("/gender-detector")
		require.NoError(t, err)
		assert.Equal(t, "Gender Detector", m.Name())
		assert.Len(t, m.Matched(), 2)
	})

	t.Run("flat", func(t *testing.T) {
		t.Parallel()

		m, err := flat.Resolve("/gender-detector")
		require.NoError(t, err)
		assert.Equal(t, "gender", m.Name())
		assert.Len(t, m.Matched(), 1)
	})

	t.Run("trailing slash, case and query are ignored", func(t *testing.T) {
		t.Parallel()

		for _, p := range []string{"/recognition/", "/Recognition", "/recognition?x=1", "//recognition#top"} {
			m, err := flat.Resolve(p)
			require.NoError(t, err, p)
			assert.Equal(t, "recognition", m.Name(), p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := nested.Resolve("/unknown")
		assert.ErrorIs(t, err, nav.ErrNotFound)

		_, err = flat.Resolve("/recognition/extra")
		assert.ErrorIs(t, err, nav.ErrNotFound)
	})

	t.Run("every endpoint resolves to exactly its own route", func(t *testing.T) {
		t.Parallel()

		for _, r := range nested.Routes() {
			if r.Layout {
				continue
			}
			m, err := nested.Resolve(r.Path)
			require.NoError(t, err)
			assert.Equal(t, r.Name, m.Name())
		}
	})
}

func TestTableDeclarationOrder(t *testing.T) {
	t.Parallel()

	table := nav.MustTable(
		nav.Route[string]{Path: "/users/:id", Name: "user", Component: page("user")},
		nav.Route[string]{Path: "/users/new", Name: "new-user", Component: page("new")},
		nav.Route[string]{Path: "/*rest", Name: "catch-all", Component: page("404")},
	)

	m, err := table.Resolve("/users/new")
	require.NoError(t, err)
	assert.Equal(t, "user", m.Name())
	assert.Equal(t, map[string]string{"id": "new"}, m.Params)

	m, err = table.Resolve("/anything/deep/here")
	require.NoError(t, err)
	assert.Equal(t, "catch-all", m.Name())
	assert.Equal(t, "anything/deep/here", m.Params["rest"])
}

func TestTableHref(t *testing.T) {
	t.Parallel()

	table := nav.MustTable(
		nav.Route[string]{Path: "/", Name: "home", Component: page("home")},
		nav.Route[string]{Path: "/users/:id", Name: "user", Component: page("user")},
	)

	p, err := table.Href("user", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/users/42", p)

	p, err = table.Href("home", nil)
	require.NoError(t, err)
	assert.Equal(t, "/", p)

	_, err = table.Href("user", nil)
	assert.ErrorIs(t, err, nav.ErrMissingParam)

	_, err = table.Href("nobody", nil)
	assert.ErrorIs(t, err, nav.ErrUnknownName)

	info, ok := table.ByName("user")
	require.True(t, ok)
	assert.Equal(t, "/users/:id", info.Path)
}
