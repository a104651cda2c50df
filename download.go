package srtm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// A Downloader fetches HGT tiles over HTTP into a local directory so
// that an ElevationService rooted there can serve them.
type Downloader struct {
	dir         string
	urlTemplate string
	client      *http.Client
}

// NewDownloader returns a Downloader writing into dir. urlTemplate
// must contain a {name} placeholder that is replaced with the tile
// filename, for example "https://example.com/srtm1/{name}".
func NewDownloader(dir, urlTemplate string) *Downloader {
	return &Downloader{
		dir:         dir,
		urlTemplate: urlTemplate,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads the named tile, for example "N49W001.hgt". The
// download is skipped if the file already exists. A response body
// whose length is not a legal tile size is rejected without being
// written.
func (d *Downloader) Fetch(ctx context.Context, filename string) error {
	path := filepath.Join(d.dir, filename)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	url := strings.ReplaceAll(d.urlTemplate, "{name}", filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http %d: %s", resp.StatusCode, url)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if _, err := ResolutionFromSize(int64(len(raw))); err != nil {
		return fmt.Errorf("%s: %w", url, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
