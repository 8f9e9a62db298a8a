// Package project provides the portfolio project model and the loader that
// fetches the project list from its fixed resource location.
package project

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// PlaceholderURL is the literal link value that means "no link".
const PlaceholderURL = "#"

// fallbackImageFormat derives a deterministic stand-in image from a project id.
const fallbackImageFormat = "https://picsum.photos/seed/project%d/900/500.jpg"

// Project is one entry of the portfolio gallery. It is read-only once loaded.
type Project struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Type         string   `json:"type" yaml:"type"`
	Category     string   `json:"category" yaml:"category"`
	Image        string   `json:"image" yaml:"image"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	LiveDemoURL  string   `json:"liveDemoUrl,omitempty" yaml:"liveDemoUrl,omitempty"`
}

// Document is the shape of the project list resource: {"projects": [...]}.
type Document struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// FallbackImage returns the stand-in image URL for a project id.
func FallbackImage(id int) string {
	return fmt.Sprintf(fallbackImageFormat, id)
}

// FallbackImage returns the stand-in image URL for p.
func (p Project) FallbackImage() string {
	return FallbackImage(p.ID)
}

// ImageURL returns the project image, or the fallback when none is set.
func (p Project) ImageURL() string {
	if strings.TrimSpace(p.Image) == "" {
		return p.FallbackImage()
	}
	return p.Image
}

// HasLink reports whether a link value should be shown.
// Empty values and the "#" placeholder are omitted.
func HasLink(link string) bool {
	link = strings.TrimSpace(link)
	return link != "" && link != PlaceholderURL
}

// HasCode reports whether the source code link should be shown.
func (p Project) HasCode() bool { return HasLink(p.GithubURL) }

// HasDemo reports whether the live demo link should be shown.
func (p Project) HasDemo() bool { return HasLink(p.LiveDemoURL) }

// ImageHost returns the host part of an image URL for compact display.
// Unparseable or relative URLs are returned unchanged.
func ImageHost(image string) string {
	u, err := url.Parse(image)
	if err != nil || u.Host == "" {
		return image
	}
	return u.Host
}

// StripControl removes C0, DEL and C1 control characters from s so text
// from a project list cannot carry terminal escape sequences. Newlines and
// tabs survive only when keepLayout is set.
func StripControl(s string, keepLayout bool) string {
	return strings.Map(func(r rune) rune {
		if keepLayout && (r == '\n' || r == '\t') {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Sanitize returns p with control characters stripped from every text field.
// The description keeps its newlines for markdown rendering.
func (p Project) Sanitize() Project {
	p.Title = StripControl(p.Title, false)
	p.Description = StripControl(p.Description, true)
	p.Type = StripControl(p.Type, false)
	p.Category = StripControl(p.Category, false)
	p.Image = StripControl(p.Image, false)
	p.GithubURL = StripControl(p.GithubURL, false)
	p.LiveDemoURL = StripControl(p.LiveDemoURL, false)
	if p.Technologies != nil {
		techs := make([]string, len(p.Technologies))
		for i, t := range p.Technologies {
			techs[i] = StripControl(t, false)
		}
		p.Technologies = techs
	}
	return p
}

// FindByID returns the project with the given id.
func FindByID(projects []Project, id int) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Validate checks list-level invariants: ids must be unique.
func Validate(projects []Project) error {
	seen := make(map[int]struct{}, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
