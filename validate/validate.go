// Package validate contains pure input validation for admin-managed content.
package validate

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen       = 200
	maxURLLen         = 500
	maxDescriptionLen = 500
	maxSkillNameLen   = 100
	maxWhatsappLen    = 500
)

// Error reports the first violated rule of an input. Checks run in a fixed
// order (required, then format, then length) so the message is deterministic.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(message string) *Error {
	return &Error{Message: message}
}

// ProjectInput carries candidate project fields before they reach the store.
type ProjectInput struct {
	Title       string
	URL         string
	Description string
}

// Project trims and validates candidate project fields.
// Returns the trimmed input on success.
func Project(in ProjectInput) (ProjectInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return in, fail("title is required")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		return in, fail("title must be at most 200 characters")
	}
	if in.URL == "" {
		return in, fail("url is required")
	}
	if !isAbsoluteURL(in.URL) {
		return in, fail("url must be a valid absolute URL")
	}
	if utf8.RuneCountInString(in.URL) > maxURLLen {
		return in, fail("url must be at most 500 characters")
	}
	if in.Description == "" {
		return in, fail("description is required")
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return in, fail("description must be at most 500 characters")
	}
	return in, nil
}

// SkillName trims and validates a skill name.
func SkillName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return s, fail("skill name is required")
	}
	if utf8.RuneCountInString(s) > maxSkillNameLen {
		return s, fail("skill name must be at most 100 characters")
	}
	return s, nil
}

// WhatsappLink trims and validates the contact link.
// An empty string is valid and means the link is not configured yet.
func WhatsappLink(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxWhatsappLen {
		return s, fail("whatsapp link must be at most 500 characters")
	}
	return s, nil
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
