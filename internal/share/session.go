package share

import (
	"context"
	"sync"

	"github.com/youruser/tarotshare/internal/poster"
)

// BuildFunc renders the session's poster.
type BuildFunc func(ctx context.Context) (*poster.Poster, error)

// Session owns the single current poster for one share payload. The first
// EnsurePoster call renders; concurrent callers share that in-flight
// build, and later callers get the cached result. A failed build is not
// cached, so the next explicit call retries.
type Session struct {
	build BuildFunc

	mu      sync.Mutex
	current *poster.Poster
	pending *buildCall
	token   string
}

type buildCall struct {
	done chan struct{}
	res  *poster.Poster
	err  error
}

func NewSession(build BuildFunc) *Session {
	return &Session{build: build}
}

// EnsurePoster returns the session poster, rendering it at most once
// regardless of caller concurrency.
func (s *Session) EnsurePoster(ctx context.Context) (*poster.Poster, error) {
	s.mu.Lock()
	if s.current != nil {
		p := s.current
		s.mu.Unlock()
		return p, nil
	}
	if s.pending == nil {
		call := &buildCall{done: make(chan struct{})}
		s.pending = call
		go s.run(ctx, call)
	}
	call := s.pending
	s.mu.Unlock()

	select {
	case <-call.done:
		return call.res, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Session) run(ctx context.Context, call *buildCall) {
	call.res, call.err = s.build(ctx)

	s.mu.Lock()
	if call.err == nil {
		s.current = call.res
	}
	s.pending = nil
	s.mu.Unlock()
	close(call.done)
}

// EnsureToken returns a stable blob-store token for the session poster,
// registering (and thereby TTL-refreshing) the blob on every call.
func (s *Session) EnsureToken(ctx context.Context, blobs *BlobStore) (string, error) {
	p, err := s.EnsurePoster(ctx)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		s.token = blobs.newToken()
	}
	blobs.Put(s.token, p)
	return s.token, nil
}

// Invalidate drops the cached poster and revokes its blob token.
func (s *Session) Invalidate(blobs *BlobStore) {
	s.mu.Lock()
	token := s.token
	s.current = nil
	s.token = ""
	s.mu.Unlock()
	if token != "" && blobs != nil {
		blobs.Revoke(token)
	}
}
