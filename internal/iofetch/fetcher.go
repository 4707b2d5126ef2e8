// Package iofetch implements the catalog Fetcher over HTTP.
package iofetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/antonholmquist/jason"
	pokedb "github.com/gnames/pokedb/pkg"
	"github.com/gnames/pokedb/pkg/config"
	"github.com/gnames/pokedb/pkg/lifecycle"
)

type fetcher struct {
	baseURL string
	client  *http.Client
}

// New creates a Fetcher that downloads entries from
// cfg.API.BaseURL + id.
func New(cfg *config.Config) lifecycle.Fetcher {
	timeout := time.Duration(cfg.API.TimeoutSec) * time.Second
	return &fetcher{
		baseURL: normalizeBase(cfg.API.BaseURL),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes one catalog entry. There are no retries,
// a failed id is reported to the caller.
func (f *fetcher) Fetch(ctx context.Context, id int) (*jason.Object, error) {
	url := f.url(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, TransportError(id, url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "pokedb/"+pokedb.Version)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, TransportError(id, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, NotFoundError(id, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, TransportError(id, url,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	obj, err := jason.NewObjectFromReader(resp.Body)
	if err != nil {
		return nil, DecodeError(id, url, err)
	}

	slog.Debug("Fetched catalog entry", "id", id, "url", url)
	return obj, nil
}

func (f *fetcher) url(id int) string {
	return f.baseURL + strconv.Itoa(id)
}

// normalizeBase makes sure the base URL ends with exactly one slash.
func normalizeBase(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + "/"
}
