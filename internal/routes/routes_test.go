package routes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenali/kenali/core/nav"
	"github.com/kenali/kenali/internal/routes"
)

func TestTableResolves(t *testing.T) {
	t.Parallel()

	table, err := routes.Table(nil)
	require.NoError(t, err)

	cases := map[string]string{
		"/":                 routes.Home,
		"/gender-detector":  routes.GenderDetector,
		"/recognition":      routes.Recognition,
		"/geofencing":       routes.Geofencing,
		"/recognition/":     routes.Recognition,
		"/recognition?id=1": routes.Recognition,
	}
	for path, name := range cases {
		m, err := table.Resolve(path)
		require.NoError(t, err, path)
		assert.Equal(t, name, m.Name(), path)
		assert.Equal(t, routes.App, m.Matched()[0].Name, path)
	}

	_, err = table.Resolve("/unknown")
	assert.ErrorIs(t, err, nav.ErrNotFound)
}

func TestTablePathsUnique(t *testing.T) {
	t.Parallel()

	table, err := routes.Table(nil)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range table.Routes() {
		if r.Layout {
			continue
		}
		assert.False(t, seen[r.Path], r.Path)
		seen[r.Path] = true
	}
	assert.Len(t, seen, 4)

	for _, name := range routes.Menu() {
		_, ok := table.ByName(name)
		assert.True(t, ok, name)
	}
}

func TestLoaderFailureNotRetried(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("chunk missing")
	table, err := routes.Table(routes.Loaders{
		routes.Recognition: func(context.Context) (templ.Component, error) {
			calls++
			return nil, boom
		},
	})
	require.NoError(t, err)

	ctrl := nav.NewController(table)
	_, err = ctrl.Activate(context.Background(), "/recognition")
	require.ErrorIs(t, err, nav.ErrLoadFailed)
	assert.Equal(t, 1, calls)

	act, err := ctrl.Activate(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, routes.Home, act.Leaf().Route.Name)
	assert.Len(t, act.Views, 2)
}
