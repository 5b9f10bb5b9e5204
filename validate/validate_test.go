package validate

import (
	"strings"
	"testing"
)

func TestProject(t *testing.T) {
	valid := ProjectInput{
		Title:       "Café Site",
		URL:         "https://cafe.example.com",
		Description: "A cozy cafe landing page",
	}

	for _, tc := range []struct {
		name    string
		in      ProjectInput
		wantErr string
	}{
		{"valid", valid, ""},
		{"empty title", ProjectInput{URL: valid.URL, Description: valid.Description}, "title is required"},
		{"whitespace title", ProjectInput{Title: "   ", URL: valid.URL, Description: valid.Description}, "title is required"},
		{"long title", ProjectInput{Title: strings.Repeat("a", 201), URL: valid.URL, Description: valid.Description}, "title must be at most 200 characters"},
		{"title at limit", ProjectInput{Title: strings.Repeat("a", 200), URL: valid.URL, Description: valid.Description}, ""},
		{"empty url", ProjectInput{Title: valid.Title, Description: valid.Description}, "url is required"},
		{"relative url", ProjectInput{Title: valid.Title, URL: "not-a-url", Description: valid.Description}, "url must be a valid absolute URL"},
		{"scheme without host", ProjectInput{Title: valid.Title, URL: "mailto:", Description: valid.Description}, "url must be a valid absolute URL"},
		{"long url", ProjectInput{Title: valid.Title, URL: "https://example.com/" + strings.Repeat("a", 500), Description: valid.Description}, "url must be at most 500 characters"},
		{"empty description", ProjectInput{Title: valid.Title, URL: valid.URL}, "description is required"},
		{"long description", ProjectInput{Title: valid.Title, URL: valid.URL, Description: strings.Repeat("a", 501)}, "description must be at most 500 characters"},
		// Title is checked before url, url before description.
		{"all empty reports title first", ProjectInput{}, "title is required"},
		{"bad url and empty description reports url first", ProjectInput{Title: valid.Title, URL: "nope"}, "url must be a valid absolute URL"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Project(tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Project(%+v) = %v, want nil", tc.in, err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("Project(%+v) = %v, want %q", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestProjectTrims(t *testing.T) {
	out, err := Project(ProjectInput{
		Title:       "  Café Site  ",
		URL:         " https://cafe.example.com ",
		Description: " A cozy cafe landing page\n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Title != "Café Site" || out.URL != "https://cafe.example.com" || out.Description != "A cozy cafe landing page" {
		t.Errorf("fields not trimmed: %+v", out)
	}
}

func TestSkillName(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		wantErr string
	}{
		{"valid", "Go", ""},
		{"at limit", strings.Repeat("a", 100), ""},
		{"empty", "", "skill name is required"},
		{"whitespace only", "  \t ", "skill name is required"},
		{"too long", strings.Repeat("a", 101), "skill name must be at most 100 characters"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SkillName(tc.in)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("SkillName(%q) = %v, want nil", tc.in, err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("SkillName(%q) = %v, want %q", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestWhatsappLink(t *testing.T) {
	if _, err := WhatsappLink(""); err != nil {
		t.Errorf("empty link should be valid, got %v", err)
	}
	if _, err := WhatsappLink("https://wa.me/5511999999999"); err != nil {
		t.Errorf("valid link rejected: %v", err)
	}
	if _, err := WhatsappLink(strings.Repeat("a", 500)); err != nil {
		t.Errorf("500-char link should be valid, got %v", err)
	}
	_, err := WhatsappLink(strings.Repeat("a", 501))
	if err == nil || err.Error() != "whatsapp link must be at most 500 characters" {
		t.Errorf("501-char link: got %v", err)
	}
	// Not a URL check: any short string passes.
	if _, err := WhatsappLink("not a url"); err != nil {
		t.Errorf("non-url short string should be valid, got %v", err)
	}
}
