// Package page renders the portfolio document and its five sections from
// embedded html/templates.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	g "maragu.dev/gomponents"

	"github.com/Meertayyab/portfolio/internal/components"
	"github.com/Meertayyab/portfolio/internal/content"
	"github.com/Meertayyab/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// ContactAction is where the contact form posts when a relay is attached.
const ContactAction = "/contact"

// ResumePath serves the configured résumé file. Content may point its
// résumé link here or anywhere else.
const ResumePath = "/resume.pdf"

var sectionBlocks = map[view.Section]string{
	view.Home:     "section-home",
	view.About:    "section-about",
	view.Projects: "section-projects",
	view.Skills:   "section-skills",
	view.Contact:  "section-contact",
}

// Data is everything a page or section template reads.
type Data struct {
	State          view.State
	Site           *content.Site
	ContactEnabled bool
	Year           int
}

// NavItem is one navigation button. Href loads the full page; Fragment
// swaps only the main region.
type NavItem struct {
	Label    string
	Href     string
	Fragment string
	Active   bool
}

// Nav lists the navigation buttons for the current state.
func (d Data) Nav() []NavItem {
	items := make([]NavItem, 0, len(view.Sections))
	for _, s := range view.Sections {
		next := d.State.Navigate(s)
		items = append(items, NavItem{
			Label:    s.Label(),
			Href:     next.Href(),
			Fragment: next.FragmentHref(),
			Active:   d.State.Is(s),
		})
	}
	return items
}

// Href links to section with the current theme.
func (d Data) Href(section string) string {
	return d.State.Navigate(view.Section(section)).Href()
}

// FragmentHref is the fragment URL for section with the current theme.
func (d Data) FragmentHref(section string) string {
	return d.State.Navigate(view.Section(section)).FragmentHref()
}

// ThemeToggleHref links to the current section with the theme flipped.
func (d Data) ThemeToggleHref() string {
	return d.State.ToggleTheme().Href()
}

// View is the data handed to page.html and fragment.html. OOB marks the
// navigation and theme toggle for out-of-band swapping, so a fragment
// response also updates the active button.
type View struct {
	Data
	Main template.HTML
	OOB  bool
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl     *template.Template
	backdrop components.Backdrop
}

// New parses the embedded templates. A nil backdrop renders nothing.
func New(backdrop components.Backdrop) (*Renderer, error) {
	if backdrop == nil {
		backdrop = components.NoBackdrop{}
	}
	r := &Renderer{backdrop: backdrop}

	tmpl, err := template.New("").Funcs(r.funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Template exposes the parsed set so gin can render it.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Section writes the block for the active section. An unknown section
// writes nothing.
func (r *Renderer) Section(w io.Writer, d Data) error {
	name, ok := sectionBlocks[d.State.Section]
	if !ok {
		return nil
	}
	if err := r.tmpl.ExecuteTemplate(w, name, d); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", name, err)
	}
	return nil
}

// View renders the active section and wraps it for page.html or
// fragment.html.
func (r *Renderer) View(d Data) (View, error) {
	var buf bytes.Buffer
	if err := r.Section(&buf, d); err != nil {
		return View{}, err
	}
	return View{Data: d, Main: template.HTML(buf.String())}, nil
}

// Fragment renders the active section for fragment.html.
func (r *Renderer) Fragment(d Data) (View, error) {
	v, err := r.View(d)
	if err != nil {
		return View{}, err
	}
	v.OOB = true
	return v, nil
}

// Page writes the full document.
func (r *Renderer) Page(w io.Writer, d Data) error {
	v, err := r.View(d)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "page.html", v)
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"pick": func(dark bool, darkClass, lightClass string) string {
			if dark {
				return darkClass
			}
			return lightClass
		},
		"skillIcon": func(s content.Skill) (template.HTML, error) {
			return components.HTML(components.SkillIcon(s.Icon, s.Name))
		},
		"skillBar": func(s content.SkillLevel, dark bool) (template.HTML, error) {
			return components.HTML(components.SkillBar(s.Name, s.Level, dark))
		},
		"projectList": func(ps []content.Project, dark bool) (template.HTML, error) {
			return components.HTML(components.ProjectList(ps, dark))
		},
		"backdrop": func() (template.HTML, error) {
			return components.HTML(r.backdropNode())
		},
		"contactAction": func() string { return ContactAction },
		"icon": func(name, class string) (template.HTML, error) {
			return components.HTML(components.Icon(name, class))
		},
	}
}

func (r *Renderer) backdropNode() g.Node {
	return r.backdrop.Backdrop()
}
