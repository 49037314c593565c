package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examplesURL = "https://github.com/extension-js/examples/tree/main/examples"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		identifier  string
		development bool
		wantKind    Kind
		wantName    string
		wantURL     string
	}{
		{
			name:       "bare name",
			identifier: "new",
			wantKind:   KindBareName,
			wantName:   "new",
			wantURL:    examplesURL + "/new",
		},
		{
			name:       "github tree path",
			identifier: "https://github.com/extension-js/examples/tree/main/examples/react",
			wantKind:   KindGitHub,
			wantName:   "react",
			wantURL:    "https://github.com/extension-js/examples/tree/main/examples/react",
		},
		{
			name:       "github is case insensitive",
			identifier: "HTTPS://GitHub.com/acme/starter/",
			wantKind:   KindGitHub,
			wantName:   "starter",
			wantURL:    "HTTPS://GitHub.com/acme/starter/",
		},
		{
			name:       "github over plain http",
			identifier: "http://github.com/acme/starter",
			wantKind:   KindGitHub,
			wantName:   "starter",
			wantURL:    "http://github.com/acme/starter",
		},
		{
			name:       "zip url",
			identifier: "https://example.com/templates/starter.zip",
			wantKind:   KindArchive,
			wantName:   "starter.zip",
			wantURL:    "https://example.com/templates/starter.zip",
		},
		{
			name:       "github lookalike host is an archive",
			identifier: "https://github.com.evil.dev/acme/starter.zip",
			wantKind:   KindArchive,
			wantName:   "starter.zip",
			wantURL:    "https://github.com.evil.dev/acme/starter.zip",
		},
		{
			name:       "github query is not part of the name",
			identifier: "https://github.com/acme/starters/tree/main/react?tab=readme-ov-file",
			wantKind:   KindGitHub,
			wantName:   "react",
			wantURL:    "https://github.com/acme/starters/tree/main/react?tab=readme-ov-file",
		},
		{
			name:       "github fragment is not part of the name",
			identifier: "https://github.com/acme/starters/tree/main/react#readme",
			wantKind:   KindGitHub,
			wantName:   "react",
			wantURL:    "https://github.com/acme/starters/tree/main/react#readme",
		},
		{
			name:       "github escaped path is decoded",
			identifier: "https://github.com/acme/starters/tree/main/my%20ext/",
			wantKind:   KindGitHub,
			wantName:   "my ext",
			wantURL:    "https://github.com/acme/starters/tree/main/my%20ext/",
		},
		{
			name:       "zip url with query",
			identifier: "https://example.com/dl/starter.zip?token=abc#top",
			wantKind:   KindArchive,
			wantName:   "starter.zip",
			wantURL:    "https://example.com/dl/starter.zip?token=abc#top",
		},
		{
			name:        "development overrides github",
			identifier:  "https://github.com/extension-js/examples/tree/main/examples/react",
			development: true,
			wantKind:    KindLocalExample,
			wantName:    "react",
		},
		{
			name:        "development bare name",
			identifier:  "new",
			development: true,
			wantKind:    KindLocalExample,
			wantName:    "new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Classify(tt.identifier, examplesURL, tt.development)

			assert.Equal(t, tt.wantKind, src.Kind)
			assert.Equal(t, tt.identifier, src.Identifier)
			assert.Equal(t, tt.wantName, src.Name)
			assert.Equal(t, tt.wantURL, src.URL)
		})
	}
}

func TestClassify_NameMatchesFetchedDirectory(t *testing.T) {
	identifiers := []string{
		"https://github.com/acme/starters/tree/main/react",
		"https://github.com/acme/starters/tree/main/react/",
		"https://github.com/acme/starters/tree/main/react?tab=readme-ov-file",
		"https://github.com/acme/starters/tree/main/react#readme",
		"https://github.com/acme/starters/tree/main/my%20ext",
		"https://github.com/acme/starter",
	}

	for _, id := range identifiers {
		t.Run(id, func(t *testing.T) {
			ref, err := ParseGitHubURL(id)
			require.NoError(t, err)
			assert.Equal(t, ref.Name(), Classify(id, examplesURL, false).Name)
		})
	}
}

func TestClassify_TrailingSlashOnExamplesURL(t *testing.T) {
	src := Classify("new", examplesURL+"/", false)
	assert.Equal(t, examplesURL+"/new", src.URL)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bare-name", KindBareName.String())
	assert.Equal(t, "local-example", KindLocalExample.String())
	assert.Equal(t, "github", KindGitHub.String())
	assert.Equal(t, "archive", KindArchive.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
