package rewards

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source supplies the raw rewards dataset. The engine fetches it lazily on
// the first recommendation request and caches the parsed matrix for the
// life of the process.
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads the dataset from a local CSV file.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rewards dataset: %w", err)
	}
	return f, nil
}

// HTTPSource fetches the dataset from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rewards dataset request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rewards dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("rewards dataset fetch returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
