// Package template acquires starter templates into a new project directory.
package template

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Kind identifies where a template comes from.
type Kind int

const (
	// KindBareName resolves against the built-in examples repository.
	KindBareName Kind = iota

	// KindLocalExample copies an example directory from disk (development mode).
	KindLocalExample

	// KindGitHub clones a path out of a GitHub repository.
	KindGitHub

	// KindArchive downloads and extracts a ZIP archive.
	KindArchive
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBareName:
		return "bare-name"
	case KindLocalExample:
		return "local-example"
	case KindGitHub:
		return "github"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}

var (
	githubPattern = regexp.MustCompile(`(?i)^https?://github\.com/`)
	httpPattern   = regexp.MustCompile(`(?i)^https?://`)
)

// Source is a classified template identifier.
type Source struct {
	Kind Kind

	// Identifier is the identifier as given by the user.
	Identifier string

	// Name is the final path segment of Identifier. For URLs it is taken
	// from the decoded path, ignoring query and fragment.
	Name string

	// URL is the location fetched for GitHub, archive and bare-name sources.
	URL string
}

// Classify turns a template identifier into a Source. Development mode
// always selects a local example; otherwise GitHub URLs are checked before
// generic HTTP(S) URLs, and anything else is a bare name.
func Classify(identifier, examplesURL string, development bool) Source {
	src := Source{
		Identifier: identifier,
		Name:       lastSegment(identifier),
	}

	switch {
	case development:
		src.Kind = KindLocalExample
	case githubPattern.MatchString(identifier):
		src.Kind = KindGitHub
		src.URL = identifier
		src.Name = urlName(identifier)
	case httpPattern.MatchString(identifier):
		src.Kind = KindArchive
		src.URL = identifier
		src.Name = urlName(identifier)
	default:
		src.Kind = KindBareName
		src.URL = strings.TrimRight(examplesURL, "/") + "/" + identifier
	}

	return src
}

func lastSegment(identifier string) string {
	trimmed := strings.TrimRight(identifier, "/")
	if trimmed == "" {
		return identifier
	}
	return path.Base(trimmed)
}

// urlName returns the last segment of the URL's decoded path, falling back
// to the raw last segment when the URL does not parse or has no path.
func urlName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return lastSegment(raw)
	}
	if name := pathName(u.Path); name != "" {
		return name
	}
	return lastSegment(raw)
}

// pathName is the last segment of p with surrounding slashes ignored.
func pathName(p string) string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return ""
	}
	return path.Base(trimmed)
}
