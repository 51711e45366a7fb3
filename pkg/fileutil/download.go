package fileutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

// DownloadResult describes a completed download.
type DownloadResult struct {
	Path   string // Final absolute destination path
	Size   int64  // Bytes written
	SHA256 string // Hex digest of the downloaded content
}

// DownloadOption configures a download.
type DownloadOption func(*downloadConfig)

type downloadConfig struct {
	client       *http.Client
	proxy        string
	expectedSize int64
	checksum     string
	progressOut  io.Writer
}

// WithClient sets a custom HTTP client, ignoring nil clients for safety.
func WithClient(client *http.Client) DownloadOption {
	return func(c *downloadConfig) {
		if client != nil {
			c.client = client
		}
	}
}

// WithProxy routes the download through the given proxy URL. The URL is
// validated before use; an invalid proxy fails the download up front.
func WithProxy(rawURL string) DownloadOption {
	return func(c *downloadConfig) {
		c.proxy = rawURL
	}
}

// WithExpectedSize supplies the total size used for progress reporting when
// the server does not send a Content-Length header.
func WithExpectedSize(size int64) DownloadOption {
	return func(c *downloadConfig) {
		if size > 0 {
			c.expectedSize = size
		}
	}
}

// WithChecksum enables SHA-256 verification of the downloaded content.
// The download fails and the partial file is removed if the hex digest does
// not match.
func WithChecksum(hexDigest string) DownloadOption {
	return func(c *downloadConfig) {
		c.checksum = strings.ToLower(strings.TrimSpace(hexDigest))
	}
}

// WithProgressOutput sets the writer for the progress bar. Pass io.Discard to
// silence progress reporting in non-interactive runs.
func WithProgressOutput(w io.Writer) DownloadOption {
	return func(c *downloadConfig) {
		if w != nil {
			c.progressOut = w
		}
	}
}

// Download streams the file at rawURL to dest, reporting progress as data
// arrives. Content is written to a temporary file next to dest and renamed
// into place only after the transfer (and optional checksum verification)
// succeeds, so dest never holds a partial file. The destination's parent
// directory must already exist.
func Download(ctx context.Context, rawURL, dest string, opts ...DownloadOption) (*DownloadResult, error) {
	cfg := &downloadConfig{
		client:      http.DefaultClient,
		progressOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	absDest, err := validator.ValidateParentExists(dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	client := cfg.client
	if cfg.proxy != "" {
		proxyURL, err := validator.ValidateProxyURL(cfg.proxy)
		if err != nil {
			return nil, err
		}
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", validator.ErrInvalidValue, err)
		}

		// Clone so the caller's client keeps its transport untouched.
		proxied := *client
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = http.ProxyURL(parsed)
		proxied.Transport = transport
		client = &proxied
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	total := resp.ContentLength
	if total <= 0 {
		total = cfg.expectedSize
	}

	// Temp file in the destination directory so the final rename stays on
	// one filesystem.
	tmpPath := absDest + ".download-" + uuid.NewString()
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	hasher := sha256.New()
	writers := []io.Writer{tmp, hasher}
	if cfg.progressOut != io.Discard {
		writers = append(writers, newProgressBar(cfg.progressOut, total, absDest))
	}

	// Body reads observe ctx through the request, so cancellation surfaces
	// here as a copy error.
	written, err := io.Copy(io.MultiWriter(writers...), resp.Body)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	digest := hex.EncodeToString(hasher.Sum(nil))
	if cfg.checksum != "" && digest != cfg.checksum {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, digest, cfg.checksum)
	}

	if err := os.Rename(tmpPath, absDest); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}

	return &DownloadResult{
		Path:   absDest,
		Size:   written,
		SHA256: digest,
	}, nil
}

// newProgressBar builds a byte-progress bar. An unknown total (-1) renders a
// spinner with a running byte count instead of a percentage.
func newProgressBar(w io.Writer, total int64, dest string) *progressbar.ProgressBar {
	if total <= 0 {
		total = -1
	}
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("downloading "+dest),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "=", SaucerHead: ">", SaucerPadding: " ",
			BarStart: "[", BarEnd: "]",
		}),
	)
}
