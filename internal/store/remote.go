// server/internal/store/remote.go
package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Mirror duplicates the document to a hosted JSON-bin style store. Reads hit
// "<url>/latest"; writes PUT the whole document back. The secret key, when
// set, is sent as X-Master-Key on every request.
type Mirror struct {
	url    string
	apiKey string
	client *http.Client
}

func NewMirror(url, apiKey string) *Mirror {
	return &Mirror{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch returns the latest remote copy of the document.
func (m *Mirror) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.url+"/latest", nil)
	if err != nil {
		return nil, err
	}
	m.setHeaders(req)
	req.Header.Set("X-Bin-Meta", "false")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote store fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote store fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Push overwrites the remote copy with body.
func (m *Mirror) Push(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, m.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	m.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote store push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote store push returned status %d", resp.StatusCode)
	}
	return nil
}

func (m *Mirror) setHeaders(req *http.Request) {
	if m.apiKey != "" {
		req.Header.Set("X-Master-Key", m.apiKey)
	}
}
