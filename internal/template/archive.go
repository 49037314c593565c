package template

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-cleanhttp"

	oerrors "github.com/extension-js/create/internal/errors"
)

const (
	// DefaultMaxRedirects bounds redirect chains followed while downloading archives.
	DefaultMaxRedirects = 5

	// DefaultMaxArchiveBytes bounds the size of a downloaded archive.
	DefaultMaxArchiveBytes int64 = 100 << 20
)

// Archive is a downloaded template payload.
type Archive struct {
	URL         string
	ContentType string
	Data        []byte
}

// ArchiveFetcher downloads archive templates.
type ArchiveFetcher interface {
	Download(ctx context.Context, url string) (*Archive, error)
}

// HTTPArchiveFetcher downloads archives over HTTP(S).
type HTTPArchiveFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPArchiveFetcher creates a fetcher following at most maxRedirects
// redirects and reading at most maxBytes of body. A zero timeout disables
// the client timeout; a zero maxBytes selects DefaultMaxArchiveBytes.
func NewHTTPArchiveFetcher(maxRedirects int, timeout time.Duration, maxBytes int64) *HTTPArchiveFetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxArchiveBytes
	}
	client := cleanhttp.DefaultClient()
	client.Timeout = timeout
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) > maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
	return &HTTPArchiveFetcher{client: client, maxBytes: maxBytes}
}

// Download implements ArchiveFetcher. Non-2xx responses are errors.
func (f *HTTPArchiveFetcher) Download(ctx context.Context, rawURL string) (*Archive, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, oerrors.NewValidationError(fmt.Sprintf("invalid template URL: %v", err), "", "")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, oerrors.NewConnectivityError(
			"downloading template failed",
			map[string]string{"URL": rawURL},
			err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("template archive not found: %s", rawURL),
			"",
			"Check the URL and try again.",
		)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, oerrors.NewConnectivityError(
			fmt.Sprintf("downloading template failed: %s", resp.Status),
			map[string]string{"URL": rawURL},
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, oerrors.NewConnectivityError(
			"reading template archive failed",
			map[string]string{"URL": rawURL},
			err,
		)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("template archive is larger than %d bytes", f.maxBytes),
			rawURL,
			"Raise http.maxBytes (EXTENSION_HTTP_MAXBYTES) to allow larger templates.",
		)
	}

	return &Archive{
		URL:         rawURL,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

var archiveContentType = regexp.MustCompile(`(?i)zip|octet-stream`)

// looksLikeZip reports whether the response headers or URL claim a ZIP payload.
func looksLikeZip(rawURL, contentType string) bool {
	if archiveContentType.MatchString(contentType) {
		return true
	}
	if strings.HasSuffix(strings.ToLower(rawURL), ".zip") {
		return true
	}
	if u, err := url.Parse(rawURL); err == nil {
		return strings.HasSuffix(strings.ToLower(u.Path), ".zip")
	}
	return false
}

// isZip sniffs the payload itself, accepting ZIP-based formats.
func isZip(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// validateArchive rejects payloads that are not ZIP archives by header, URL
// and content.
func validateArchive(a *Archive) error {
	if !looksLikeZip(a.URL, a.ContentType) || !isZip(a.Data) {
		return oerrors.NewNotArchiveError(a.URL, a.ContentType)
	}
	return nil
}

// extractZip unpacks data into dest, overwriting existing files. All
// writes go through an os.Root, so neither entry names nor symlinks created
// by earlier entries can reach outside dest.
func extractZip(data []byte, dest string) error {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("opening zip archive: %w", err)
	}

	root, err := os.OpenRoot(dest)
	if err != nil {
		return fmt.Errorf("opening extraction directory: %w", err)
	}
	defer root.Close()

	var links []string
	for _, f := range r.File {
		name := filepath.FromSlash(f.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("archive entry %q escapes the extraction directory", f.Name)
		}
		name = filepath.Clean(name)

		if err := extractEntry(root, f, name); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
		if f.Mode()&fs.ModeSymlink != 0 {
			links = append(links, name)
		}
	}

	// A link may only become escaping once a later entry creates the link
	// it points through.
	for _, name := range links {
		if _, err := root.Stat(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("symlink %q escapes the extraction directory: %w", filepath.ToSlash(name), err)
		}
	}
	return nil
}

func extractEntry(root *os.Root, f *zip.File, name string) error {
	mode := f.Mode()

	if mode.IsDir() {
		return ensureDir(root, name)
	}
	if dir := filepath.Dir(name); dir != "." {
		if err := ensureDir(root, dir); err != nil {
			return err
		}
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	if mode&fs.ModeSymlink != 0 {
		link, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		linkTarget := filepath.FromSlash(string(link))
		resolved := filepath.Join(filepath.Dir(name), linkTarget)
		if filepath.IsAbs(linkTarget) || !filepath.IsLocal(resolved) {
			return fmt.Errorf("symlink target %q escapes the extraction directory", link)
		}
		if err := root.RemoveAll(name); err != nil {
			return err
		}
		return root.Symlink(linkTarget, name)
	}

	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm|0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ensureDir creates dir inside root unless it already resolves to a
// directory there, possibly through a link.
func ensureDir(root *os.Root, dir string) error {
	info, err := root.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return root.MkdirAll(dir, 0o755)
	default:
		return err
	}
}
