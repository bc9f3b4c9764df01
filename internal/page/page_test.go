package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meertayyab/portfolio/internal/components"
	"github.com/Meertayyab/portfolio/internal/content"
	"github.com/Meertayyab/portfolio/internal/view"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(components.DefaultStarfield())
	require.NoError(t, err)
	return r
}

func defaultData(t *testing.T, st view.State) Data {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return Data{State: st, Site: site, Year: 2026}
}

func TestSectionRendersExactlyOneBlock(t *testing.T) {
	r := newRenderer(t)
	for _, s := range view.Sections {
		t.Run(string(s), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Section(&buf, defaultData(t, view.Initial().Navigate(s))))
			out := buf.String()
			for _, other := range view.Sections {
				marker := `data-section="` + string(other) + `"`
				if other == s {
					assert.Contains(t, out, marker)
				} else {
					assert.NotContains(t, out, marker)
				}
			}
		})
	}
}

func TestSectionUnknownRendersNothing(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, defaultData(t, view.State{Section: "blog"})))
	assert.Empty(t, buf.String())
}

func TestPageDefaults(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, defaultData(t, view.Initial())))
	out := buf.String()

	assert.Contains(t, out, `data-theme="light"`)
	assert.Contains(t, out, "bg-gray-50 text-gray-900")
	assert.Contains(t, out, `data-section="home"`)
	assert.Contains(t, out, `<canvas id="starfield"`)
	assert.Contains(t, out, "&copy; 2026 Meer Tayyab")
	assert.Equal(t, 5, strings.Count(out, "data-nav="))
	assert.Contains(t, out, `href="/resume.pdf" download`)
	assert.Contains(t, out, `<body hx-boost="true" hx-push-url="false">`)
	assert.NotContains(t, out, "hx-swap-oob")
	assert.Equal(t, 5, strings.Count(out, `hx-target="#main" class="press px-3`))
	assert.Contains(t, out, `aria-label="GitHub"><svg`)
	assert.Contains(t, out, `aria-label="Email"><svg`)
}

func TestFragmentView(t *testing.T) {
	r := newRenderer(t)
	v, err := r.Fragment(defaultData(t, view.State{Section: view.Projects, Dark: true}))
	require.NoError(t, err)
	assert.True(t, v.OOB)

	var buf bytes.Buffer
	require.NoError(t, r.Template().ExecuteTemplate(&buf, "fragment.html", v))
	out := buf.String()
	assert.Contains(t, out, `data-section="projects"`)
	assert.Contains(t, out, `id="nav-links" class="ml-10 flex items-baseline space-x-4" hx-swap-oob="true"`)
	assert.Contains(t, out, `aria-label="Toggle theme" hx-swap-oob="true">`)
	assert.Contains(t, out, `href="/?section=projects&amp;theme=light"`)
	assert.NotContains(t, out, "<html")
}

func TestPageDark(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, defaultData(t, view.State{Section: view.About, Dark: true})))
	out := buf.String()

	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, "bg-gray-900 text-white")
	assert.Contains(t, out, `data-section="about"`)
	assert.Contains(t, out, "<strong>clean, maintainable code</strong>")
}

func TestPageWithoutBackdrop(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, defaultData(t, view.Initial())))
	assert.NotContains(t, buf.String(), "starfield")
}

func TestNavLinksKeepTheme(t *testing.T) {
	d := defaultData(t, view.State{Section: view.Skills, Dark: true})
	nav := d.Nav()
	require.Len(t, nav, 5)
	for i, item := range nav {
		assert.Equal(t, view.Sections[i].Label(), item.Label)
		assert.Contains(t, item.Href, "theme=dark")
		assert.Equal(t, view.Sections[i] == view.Skills, item.Active)
	}
	assert.Equal(t, "/section/about?theme=dark", nav[1].Fragment)
	assert.Equal(t, "/section/contact?theme=dark", d.FragmentHref("contact"))
	assert.Equal(t, "/?section=skills&theme=light", d.ThemeToggleHref())
	assert.Equal(t, "/?section=projects&theme=dark", d.Href("projects"))
}

func TestContactFormInertByDefault(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, defaultData(t, view.Initial().Navigate(view.Contact))))
	out := buf.String()

	assert.Contains(t, out, `id="contact-form"`)
	assert.NotContains(t, out, "action=")
	assert.NotContains(t, out, "hx-post")
	assert.Contains(t, out, `onsubmit="return false"`)
	// A boosted form would still submit over XHR.
	assert.Contains(t, out, `<form id="contact-form" class="space-y-6" hx-boost="false" onsubmit="return false">`)
}

func TestContactFormWithRelay(t *testing.T) {
	r := newRenderer(t)
	d := defaultData(t, view.Initial().Navigate(view.Contact))
	d.ContactEnabled = true

	var buf bytes.Buffer
	require.NoError(t, r.Section(&buf, d))
	out := buf.String()
	assert.Contains(t, out, `action="/contact"`)
	assert.Contains(t, out, `hx-post="/contact"`)
}

func TestSkillsSection(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	d := defaultData(t, view.Initial().Navigate(view.Skills))
	require.NoError(t, r.Section(&buf, d))
	out := buf.String()

	for _, s := range d.Site.ProfessionalSkills {
		assert.Contains(t, out, ">"+s.Name+"<")
	}
	assert.Equal(t, len(d.Site.ProfessionalSkills), strings.Count(out, `class="skill-bar"`))
	assert.Contains(t, out, `style="width: 90%"`)
	assert.Equal(t, 12, strings.Count(out, `class="skill-icon`))
}
