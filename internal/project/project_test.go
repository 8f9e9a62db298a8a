package project

import (
	"errors"
	"testing"
)

func TestHasLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"", false},
		{"#", false},
		{"  #  ", false},
		{"   ", false},
		{"https://github.com/acme/app", true},
	}
	for _, tt := range tests {
		if got := HasLink(tt.link); got != tt.want {
			t.Errorf("HasLink(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}

func TestProject_HasCodeHasDemo(t *testing.T) {
	p := Project{ID: 1, GithubURL: "#", LiveDemoURL: "https://demo.example"}
	if p.HasCode() {
		t.Error("placeholder github link should be omitted")
	}
	if !p.HasDemo() {
		t.Error("demo link should be shown")
	}

	p = Project{ID: 2}
	if p.HasCode() || p.HasDemo() {
		t.Error("missing links should be omitted")
	}
}

func TestFallbackImage(t *testing.T) {
	got := FallbackImage(7)
	want := "https://picsum.photos/seed/project7/900/500.jpg"
	if got != want {
		t.Errorf("FallbackImage(7) = %q, want %q", got, want)
	}
	if FallbackImage(7) != FallbackImage(7) {
		t.Error("fallback must be deterministic")
	}
}

func TestProject_ImageURL(t *testing.T) {
	p := Project{ID: 3, Image: "https://img.example/a.png"}
	if p.ImageURL() != "https://img.example/a.png" {
		t.Errorf("ImageURL = %q", p.ImageURL())
	}
	p.Image = ""
	if p.ImageURL() != FallbackImage(3) {
		t.Errorf("empty image should fall back, got %q", p.ImageURL())
	}
}

func TestImageHost(t *testing.T) {
	if got := ImageHost("https://img.example/a.png"); got != "img.example" {
		t.Errorf("ImageHost = %q", got)
	}
	if got := ImageHost("images/a.png"); got != "images/a.png" {
		t.Errorf("relative ImageHost = %q", got)
	}
}

func TestFindByID(t *testing.T) {
	list := []Project{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}
	p, ok := FindByID(list, 2)
	if !ok || p.Title != "two" {
		t.Errorf("FindByID(2) = %+v, %v", p, ok)
	}
	if _, ok := FindByID(list, 9); ok {
		t.Error("FindByID(9) should miss")
	}
}

func TestValidate_DuplicateID(t *testing.T) {
	err := Validate([]Project{{ID: 1}, {ID: 2}, {ID: 1}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := Validate([]Project{{ID: 1}, {ID: 2}}); err != nil {
		t.Errorf("unique ids: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Errorf("empty list: %v", err)
	}
}

func TestStripControl(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		keepLayout bool
		want       string
	}{
		{"plain", "Weather Board", false, "Weather Board"},
		{"osc title", "Evil\x1b]0;pwned\x07", false, "Evil]0;pwned"},
		{"csi clear", "a\x1b[2Jb", false, "a[2Jb"},
		{"c1 csi", "a\u009b2Jb", false, "a2Jb"},
		{"del", "a\x7fb", false, "ab"},
		{"newline dropped", "one\ntwo", false, "onetwo"},
		{"newline kept", "one\n\ttwo\r", true, "one\n\ttwo"},
		{"unicode kept", "café ☕", false, "café ☕"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripControl(tt.in, tt.keepLayout); got != tt.want {
				t.Errorf("StripControl(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProject_Sanitize(t *testing.T) {
	p := Project{
		ID:           1,
		Title:        "T\x1b]52;c;aGk=\x07",
		Description:  "line one\nline \x1b[31mtwo",
		Type:         "\x1b[2JTool",
		Image:        "https://img.example/\x1bx.png",
		Technologies: []string{"Go\x07"},
		GithubURL:    "https://github.com/a\x1b",
		LiveDemoURL:  "#\x00",
	}
	orig := p.Technologies[0]
	got := p.Sanitize()
	if got.Title != "T]52;c;aGk=" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Description != "line one\nline [31mtwo" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Type != "[2JTool" || got.Image != "https://img.example/x.png" {
		t.Errorf("Type/Image = %q / %q", got.Type, got.Image)
	}
	if got.Technologies[0] != "Go" || p.Technologies[0] != orig {
		t.Errorf("Technologies = %q, source mutated = %v", got.Technologies, p.Technologies[0] != orig)
	}
	if got.GithubURL != "https://github.com/a" || got.LiveDemoURL != "#" {
		t.Errorf("links = %q / %q", got.GithubURL, got.LiveDemoURL)
	}
}
