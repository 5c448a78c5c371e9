package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// chunkSize is the copy buffer used while streaming a download to disk.
const chunkSize = 8 * 1024

// Downloader fetches record assets over HTTP
type Downloader struct {
	HTTPClient  *http.Client
	UserAgent   string
	ReadTimeout time.Duration // max idle time between body reads, 0 disables
}

// NewDownloader creates a downloader around a shared HTTP client
func NewDownloader(client *http.Client, userAgent string, readTimeout time.Duration) *Downloader {
	return &Downloader{
		HTTPClient:  client,
		UserAgent:   userAgent,
		ReadTimeout: readTimeout,
	}
}

// Download streams url into destPath and returns the number of bytes written.
// The body goes to destPath+".tmp" first and is renamed once complete, so a
// failed download never leaves a partial asset behind.
func (d *Downloader) Download(ctx context.Context, url, destPath string) (int64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("asset URL returned status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if d.ReadTimeout > 0 {
		idle := newIdleReader(resp.Body, d.ReadTimeout, cancel)
		defer idle.stop()
		body = idle
	}

	tempPath := destPath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	written, err := io.CopyBuffer(out, body, make([]byte, chunkSize))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("download failed: %w", err)
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to move file: %w", err)
	}

	slog.Debug("Asset written", "url", url, "path", destPath, "bytes", written)
	return written, nil
}

// idleReader cancels the request when no body bytes arrive within timeout.
type idleReader struct {
	r       io.Reader
	timeout time.Duration
	timer   *time.Timer
}

func newIdleReader(r io.Reader, timeout time.Duration, cancel context.CancelFunc) *idleReader {
	return &idleReader{
		r:       r,
		timeout: timeout,
		timer:   time.AfterFunc(timeout, cancel),
	}
}

func (i *idleReader) Read(p []byte) (int, error) {
	n, err := i.r.Read(p)
	if n > 0 {
		i.timer.Reset(i.timeout)
	}
	return n, err
}

func (i *idleReader) stop() {
	i.timer.Stop()
}
