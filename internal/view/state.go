// Package view holds the per-request view state of the page: which section
// is visible and whether the dark theme is on. The state travels in the URL
// query, so every visit to "/" starts over at home with the light theme.
package view

import (
	"net/url"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section names one of the page regions. Any string is accepted; only the
// five constants below have content.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Projects Section = "projects"
	Skills   Section = "skills"
	Contact  Section = "contact"
)

// Sections lists the navigable sections in menu order.
var Sections = []Section{Home, About, Projects, Skills, Contact}

var titleCaser = cases.Title(language.English)

// Label is the text shown on the navigation button.
func (s Section) Label() string {
	return titleCaser.String(string(s))
}

func (s Section) String() string { return string(s) }

// Query parameter names.
const (
	SectionParam = "section"
	ThemeParam   = "theme"
)

const (
	themeLight = "light"
	themeDark  = "dark"
)

// State is the view state of one rendered page.
type State struct {
	Section Section
	Dark    bool
}

// Initial is the state of a page loaded without any navigation.
func Initial() State {
	return State{Section: Home}
}

// FromQuery reads the state from URL query values. The section is taken as
// is; an empty value means home.
func FromQuery(q url.Values) State {
	st := Initial()
	if s := q.Get(SectionParam); s != "" {
		st.Section = Section(s)
	}
	st.Dark = q.Get(ThemeParam) == themeDark
	return st
}

// Navigate returns the state with the section replaced.
func (s State) Navigate(to Section) State {
	s.Section = to
	return s
}

// WithTheme returns the state with the theme flag set to dark.
func (s State) WithTheme(dark bool) State {
	s.Dark = dark
	return s
}

// ToggleTheme returns the state with the theme flipped.
func (s State) ToggleTheme() State {
	return s.WithTheme(!s.Dark)
}

// Theme is "dark" or "light".
func (s State) Theme() string {
	if s.Dark {
		return themeDark
	}
	return themeLight
}

// Is reports whether name is the active section.
func (s State) Is(name Section) bool {
	return s.Section == name
}

// Query encodes the state as URL query values.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set(SectionParam, string(s.Section))
	q.Set(ThemeParam, s.Theme())
	return q
}

// Href is the page URL that renders this state.
func (s State) Href() string {
	return "/?" + s.Query().Encode()
}

// FragmentHref is the HTMX fragment URL for the active section.
func (s State) FragmentHref() string {
	q := url.Values{}
	q.Set(ThemeParam, s.Theme())
	return "/section/" + url.PathEscape(string(s.Section)) + "?" + q.Encode()
}
