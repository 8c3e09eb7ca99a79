// Package nav maps URL paths to lazily loaded components.
//
// A Table is built once from a literal route list and never changes:
//
//	table := nav.MustTable(
//		nav.Route[Page]{
//			Path:      "/",
//			Name:      "app",
//			Component: nav.Lazy(loadLayout),
//			Children: []nav.Route[Page]{
//				{Path: "", Name: "home", Component: nav.Lazy(loadHome)},
//				{Path: "/recognition", Name: "recognition", Component: nav.Lazy(loadRecognition)},
//			},
//		},
//	)
//
// Resolution walks the routes in declaration order, children before their
// parent, and the first match wins. Unmatched paths fail with ErrNotFound;
// the table itself declares no fallback.
//
// A Controller adds a base path and activation: Activate resolves a path and
// loads every component of the match (layouts and leaf), returning only when
// all are ready. A History is a per-client session on top of a controller
// with Push, Replace, Back and Forward; the most recent navigation wins.
package nav
