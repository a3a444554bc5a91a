// Package web implements the HTTP surface shared by every catalog and
// loader adapter: JSON GETs with a fixed identifying header, and streaming
// downloads with incremental digest verification.
package web

import (
	"context"
	"crypto/sha1" //nolint:gosec // Mojang publishes sha1 digests for server jars
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"hash"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// UserAgent identifies every outbound request. Some of the consumed
// endpoints reject clients without a browser-like agent string.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.3"

// chunkSize is the read granularity for downloads; each chunk is written to
// disk and fed to the running digest before the next is read.
const chunkSize = 1024

// ErrNotFound is returned for 404 responses. Callers translate it into the
// appropriate domain error.
var ErrNotFound = zerr.New("remote resource not found")

// Client implements ports.Downloader and the JSON GET primitives on top of
// net/http.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

var _ ports.Downloader = (*Client)(nil)

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, useful for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Client) {
		w.httpClient = c
	}
}

// WithUserAgent overrides the identifying header value.
func WithUserAgent(ua string) Option {
	return func(w *Client) {
		w.userAgent = ua
	}
}

// NewClient creates a Client with the default transport and user agent.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, "creating request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "executing request")
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, zerr.With(ErrNotFound, "url", url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, zerr.With(zerr.New("unexpected response status"), "url", url, "status", resp.StatusCode)
	}

	return resp, nil
}

// GetJSON issues a GET and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return zerr.With(zerr.Wrap(err, "decoding response"), "url", url)
	}
	return nil
}

// GetString issues a GET and returns the body as a trimmed string.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "reading response"), "url", url)
	}
	return strings.TrimSpace(string(body)), nil
}

// Fetch streams the file at url to dest, creating parent directories as
// needed.
func (c *Client) Fetch(ctx context.Context, url, dest string) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	out, err := createDest(dest)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck // flushed via explicit copy below

	if _, err := io.Copy(out, resp.Body); err != nil {
		return zerr.With(zerr.Wrap(err, "writing download"), "path", dest)
	}
	return nil
}

// FetchWithChecksum streams the file at url to dest in fixed-size chunks,
// feeding each chunk to the digest named by sum.Method. The file is fully
// written even when the digest disagrees; verification is a post-write
// assertion, not a guard.
func (c *Client) FetchWithChecksum(ctx context.Context, url, dest string, sum domain.Checksum) error {
	digest, err := newDigest(sum.Method)
	if err != nil {
		return err
	}

	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	out, err := createDest(dest)
	if err != nil {
		return err
	}

	buf := make([]byte, chunkSize)
	_, copyErr := io.CopyBuffer(io.MultiWriter(out, digest), resp.Body, buf)
	closeErr := out.Close()
	if copyErr != nil {
		return zerr.With(zerr.Wrap(copyErr, "writing download"), "path", dest)
	}
	if closeErr != nil {
		return zerr.With(zerr.Wrap(closeErr, "closing download"), "path", dest)
	}

	actual := hex.EncodeToString(digest.Sum(nil))
	if !strings.EqualFold(actual, sum.Hash) {
		return zerr.With(domain.ErrChecksumMismatch,
			"method", sum.Method,
			"expected", strings.ToLower(sum.Hash),
			"actual", actual,
		)
	}

	return nil
}

func createDest(dest string) (*os.File, error) {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "creating download directory"), "path", dir)
		}
	}

	out, err := os.Create(dest) //nolint:gosec // dest derives from the lockfile's own records
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "creating download file"), "path", dest)
	}
	return out, nil
}

func newDigest(method string) (hash.Hash, error) {
	switch strings.ToLower(method) {
	case "sha1":
		return sha1.New(), nil //nolint:gosec // dictated by the publishing endpoint
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownChecksumMethod, "method", method)
	}
}
