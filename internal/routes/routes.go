// Package routes declares the application's navigation table.
package routes

import (
	"context"

	"github.com/a-h/templ"

	"github.com/kenali/kenali/core/nav"
	"github.com/kenali/kenali/internal/pages"
)

// Route names.
const (
	App            = "inApp"
	Home           = "home"
	GenderDetector = "Gender Detector"
	Recognition    = "Face Recognition"
	Geofencing     = "Geo Fencing"
)

// Loader produces a page component on first navigation.
type Loader func(ctx context.Context) (templ.Component, error)

// Loaders supplies the component loader for each route name. Missing entries
// fall back to the package's pages.
type Loaders map[string]Loader

func defaults() Loaders {
	static := func(c func() templ.Component) Loader {
		return func(context.Context) (templ.Component, error) { return c(), nil }
	}
	return Loaders{
		App:            static(pages.Layout),
		Home:           static(pages.Home),
		GenderDetector: static(pages.GenderDetector),
		Recognition:    static(pages.Recognition),
		Geofencing:     static(pages.Geofencing),
	}
}

// Routes returns the route declarations: an application layout at "/" with
// the home page and the three feature pages as children.
func Routes(overrides Loaders) []nav.Route[templ.Component] {
	loaders := defaults()
	for name, l := range overrides {
		if l != nil {
			loaders[name] = l
		}
	}
	lazy := func(name string) nav.Component[templ.Component] {
		return nav.Lazy(loaders[name])
	}

	return []nav.Route[templ.Component]{
		{
			Path:      "/",
			Name:      App,
			Component: lazy(App),
			Children: []nav.Route[templ.Component]{
				{Path: "", Name: Home, Component: lazy(Home), Meta: map[string]string{"title": "Beranda"}},
				{Path: "/gender-detector", Name: GenderDetector, Component: lazy(GenderDetector), Meta: map[string]string{"title": GenderDetector}},
				{Path: "/recognition", Name: Recognition, Component: lazy(Recognition), Meta: map[string]string{"title": Recognition}},
				{Path: "/geofencing", Name: Geofencing, Component: lazy(Geofencing), Meta: map[string]string{"title": Geofencing}},
			},
		},
	}
}

// Table builds the validated navigation table.
func Table(overrides Loaders) (*nav.Table[templ.Component], error) {
	return nav.NewTable(Routes(overrides)...)
}

// Menu lists the route names shown in the navigation bar, in order.
func Menu() []string {
	return []string{Home, GenderDetector, Recognition, Geofencing}
}
