package project

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ImageProber checks that project images can be fetched.
// Only http(s) URLs are probed; anything else is assumed loadable.
type ImageProber struct {
	client *http.Client
}

// NewImageProber creates a prober using client (a 10s client when nil).
func NewImageProber(client *http.Client) *ImageProber {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ImageProber{client: client}
}

// Probeable reports whether url is one the prober will contact.
func Probeable(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// Probe issues a HEAD request for url and returns an error unless the
// server answers with a 2xx status.
func (p *ImageProber) Probe(ctx context.Context, url string) error {
	if !Probeable(url) {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("probe %s: %w: %s", url, ErrStatus, resp.Status)
	}
	return nil
}
