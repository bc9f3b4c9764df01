// Package content holds the read-only data shown on the page: profile copy,
// projects, skills and outbound links.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Site struct {
	Profile            Profile      `yaml:"profile"`
	Projects           []Project    `yaml:"projects"`
	SkillGroups        []SkillGroup `yaml:"skill_groups"`
	ProfessionalSkills []SkillLevel `yaml:"professional_skills"`
	Links              Links        `yaml:"links"`
	Resume             string       `yaml:"resume"`
}

type Profile struct {
	Name    string   `yaml:"name"`
	Role    string   `yaml:"role"`
	Tagline string   `yaml:"tagline"`
	Photo   string   `yaml:"photo"`
	About   []string `yaml:"about"`

	// AboutHTML is About rendered from Markdown, filled in by Parse.
	AboutHTML []template.HTML `yaml:"-"`
}

// Project is one card in the projects section. Image is optional; a project
// without one shows only its title overlay.
type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Link         string   `yaml:"link"`
	Image        *Image   `yaml:"image,omitempty"`
}

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

type SkillGroup struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

type Skill struct {
	Name string `yaml:"name"`
	Icon Icon   `yaml:"icon"`
}

// Icon is a built-in SVG icon by Name, or else a text glyph, with its CSS
// classes.
type Icon struct {
	Name  string `yaml:"name,omitempty"`
	Text  string `yaml:"text"`
	Class string `yaml:"class"`
}

// SkillLevel is a named percentage. Level is meant to be within [0,100] but
// is not checked.
type SkillLevel struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
	Indeed   string `yaml:"indeed"`
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse decodes a YAML document and renders its Markdown fields.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	site.Profile.AboutHTML = make([]template.HTML, 0, len(site.Profile.About))
	for i, p := range site.Profile.About {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(p), &buf); err != nil {
			return nil, fmt.Errorf("render about paragraph %d: %w", i, err)
		}
		site.Profile.AboutHTML = append(site.Profile.AboutHTML, template.HTML(buf.String()))
	}
	return &site, nil
}

// Load reads the content file at path, or the built-in content when path is
// empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Default returns the built-in content.
func Default() (*Site, error) {
	return Parse(defaultYAML)
}
