// Package pages holds the templ components of the application: the layout,
// the home page, the feature placeholders and the error pages.
//
// Components read their data from the request context (see WithPage), so the
// same component value can be loaded once and rendered for every request.
package pages
