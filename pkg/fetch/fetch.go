// Package fetch loads asset bytes from local files, HTTP/HTTPS URLs, and
// base64 data URIs so callers can point the extraction pipeline at any
// capture source with one call.
package fetch

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"designlens/pkg/images"
)

const userAgent = "designlens/0.3 (compatible; Go)"

// Fetcher retrieves remote assets, resolving relative URIs against a base
// URL when one is set.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

// New returns a Fetcher with a shared 30 second timeout client.
func New(baseURL string) *Fetcher {
	return &Fetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Bytes retrieves the resource at uri. Relative URIs are resolved against
// the fetcher's base URL. Returns the body and the Content-Type header.
func (f *Fetcher) Bytes(uri string) ([]byte, string, error) {
	resolved := uri
	if !IsNetworkURL(uri) && f.BaseURL != "" {
		resolved = ResolveURL(f.BaseURL, uri)
	}
	if !IsNetworkURL(resolved) {
		return nil, "", fmt.Errorf("cannot fetch non-network URI: %s", resolved)
	}

	req, err := http.NewRequest("GET", resolved, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", resolved, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, resolved)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// Image retrieves an image URI and returns its raw encoded bytes. A
// Content-Type that is present but clearly not an image is rejected before
// the bytes reach the decoder.
func (f *Fetcher) Image(uri string) ([]byte, error) {
	body, contentType, err := f.Bytes(uri)
	if err != nil {
		return nil, err
	}
	ct := strings.ToLower(contentType)
	if ct != "" && !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "application/octet-stream") {
		return nil, fmt.Errorf("unexpected content type for image: %s", contentType)
	}
	return body, nil
}

// Read loads asset bytes from src, which may be a local file path, an
// HTTP/HTTPS URL, or a base64 data URI.
func Read(src string) ([]byte, error) {
	switch {
	case images.IsDataURI(src):
		return decodeDataURI(src)
	case IsNetworkURL(src):
		return New("").Image(src)
	default:
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src, err)
		}
		return data, nil
	}
}

// decodeDataURI extracts the base64 payload of a data URI.
func decodeDataURI(uri string) ([]byte, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta := uri[:idx]
	if !strings.Contains(meta, "base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", meta)
	}
	data, err := base64.StdEncoding.DecodeString(uri[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}
	return data, nil
}

// ResolveURL resolves a possibly-relative URI against a base URL. If ref is
// already absolute, it is returned as-is.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// IsNetworkURL reports whether s looks like an HTTP or HTTPS URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
