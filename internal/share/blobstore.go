package share

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/youruser/tarotshare/internal/poster"
)

// BlobTTL bounds how long an unaccessed poster blob stays addressable.
const BlobTTL = 60 * time.Second

// BlobStore holds finished posters under short-lived tokens. Each access
// resets the expiry, mirroring the object-URL auto-revoke timer the share
// page uses to bound memory.
type BlobStore struct {
	c *cache.Cache
}

func NewBlobStore() *BlobStore {
	return &BlobStore{c: cache.New(BlobTTL, 2*time.Minute)}
}

func (b *BlobStore) Put(token string, p *poster.Poster) {
	b.c.SetDefault(token, p)
}

// Get returns the poster for token and refreshes its TTL.
func (b *BlobStore) Get(token string) (*poster.Poster, bool) {
	v, ok := b.c.Get(token)
	if !ok {
		return nil, false
	}
	p := v.(*poster.Poster)
	b.c.SetDefault(token, p)
	return p, true
}

func (b *BlobStore) Revoke(token string) {
	b.c.Delete(token)
}

func (b *BlobStore) newToken() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
