package artwork

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	cache "github.com/patrickmn/go-cache"

	"github.com/youruser/tarotshare/internal/cards"
)

// Fetcher downloads and decodes artwork. Decoded images are cached by URL
// and concurrent requests for the same URL share one download.
type Fetcher struct {
	client *http.Client
	cache  *cache.Cache

	mu       sync.Mutex
	inflight map[string]*fetchCall
}

type fetchCall struct {
	done chan struct{}
	img  image.Image
	err  error
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		cache:    cache.New(5*time.Minute, 10*time.Minute),
		inflight: map[string]*fetchCall{},
	}
}

// Fetch returns the decoded image at url, from cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	if v, ok := f.cache.Get(url); ok {
		return v.(image.Image), nil
	}

	f.mu.Lock()
	if call, ok := f.inflight[url]; ok {
		f.mu.Unlock()
		select {
		case <-call.done:
			return call.img, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &fetchCall{done: make(chan struct{})}
	f.inflight[url] = call
	f.mu.Unlock()

	call.img, call.err = f.download(ctx, url)
	if call.err == nil {
		f.cache.SetDefault(url, call.img)
	}

	f.mu.Lock()
	delete(f.inflight, url)
	f.mu.Unlock()
	close(call.done)

	return call.img, call.err
}

func (f *Fetcher) download(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

// Library combines URL resolution with cached fetching and implements the
// composer's art source. A reversed request that fails falls back to the
// upright variant once; upright is terminal. A nil image means both
// attempts failed and the caller draws a placeholder.
type Library struct {
	Resolver Resolver
	Fetcher  *Fetcher
}

func (l *Library) CardImage(ctx context.Context, baseID, orientation string) image.Image {
	if l.Fetcher == nil {
		return nil
	}
	img, err := l.Fetcher.Fetch(ctx, l.Resolver.ImageURL(baseID, orientation))
	if err == nil {
		return img
	}
	if orientation == cards.OrientationReversed {
		img, err = l.Fetcher.Fetch(ctx, l.Resolver.ImageURL(baseID, cards.OrientationUpright))
		if err == nil {
			return img
		}
	}
	return nil
}
