package api

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/youruser/tarotshare/internal/cards"
	"github.com/youruser/tarotshare/internal/config"
	"github.com/youruser/tarotshare/internal/poster"
	"github.com/youruser/tarotshare/internal/reading"
	"github.com/youruser/tarotshare/internal/share"
	"github.com/youruser/tarotshare/internal/util"
)

// Server wires the deck store and poster composer into the HTTP surface.
type Server struct {
	log      *zap.Logger
	cfg      config.Config
	store    *cards.Store
	composer *poster.Composer
	blobs    *share.BlobStore
	sessions *cache.Cache
}

func NewServer(log *zap.Logger, cfg config.Config, store *cards.Store, composer *poster.Composer) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:      log,
		cfg:      cfg,
		store:    store,
		composer: composer,
		blobs:    share.NewBlobStore(),
		sessions: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cards": len(s.store.Cards())})
}

func (s *Server) listCards(c *gin.Context) {
	cs := s.store.Cards()
	c.JSON(http.StatusOK, gin.H{"count": len(cs), "cards": cs})
}

func (s *Server) getCard(c *gin.Context) {
	card := s.store.Find(c.Param("id"))
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (s *Server) filterCards(c *gin.Context) {
	var opt cards.FilterOptions
	if err := c.BindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out := cards.Filter(s.store.Cards(), opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "cards": out})
}

// buildPoster renders a poster for the posted payload. Identical payloads
// share a session, so concurrent requests trigger a single render.
func (s *Server) buildPoster(c *gin.Context) {
	var p reading.Payload
	if err := c.BindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.renderPoster(c, &p)
}

// posterFromLink decodes the share token from the query and renders the
// same way the share page does when opened from a link.
func (s *Server) posterFromLink(c *gin.Context) {
	p, err := share.Decode(c.Query(share.QueryParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.renderPoster(c, p)
}

func (s *Server) renderPoster(c *gin.Context, p *reading.Payload) {
	if err := p.Normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts := poster.Options{
		Preset: poster.Preset(c.DefaultQuery("preset", string(poster.PresetStory))),
		Style:  poster.Style(c.DefaultQuery("style", string(poster.StyleClassic))),
	}

	sess, key := s.sessionFor(p, opts)
	result, err := sess.EnsurePoster(c.Request.Context())
	if err != nil {
		// Encoding is the only fatal render error; the share link is the
		// degraded path that always works.
		s.log.Error("poster build failed", zap.Error(err), zap.String("session", key))
		link, _ := share.URL(s.cfg.SiteURL, p)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "poster build failed", "share_url": link})
		return
	}

	token, err := sess.EnsureToken(c.Request.Context(), s.blobs)
	if err == nil {
		c.Header("X-Poster-Token", token)
	}
	if s.cfg.OutDir != "" {
		s.archive(token, result)
	}

	c.Header("X-Poster-Width", strconv.Itoa(result.Width))
	c.Header("X-Poster-Height", strconv.Itoa(result.Height))
	c.Data(http.StatusOK, "image/png", result.PNG)
}

// sessionFor returns the memoized render session for a payload/options
// pair, creating it on first use.
func (s *Server) sessionFor(p *reading.Payload, opts poster.Options) (*share.Session, string) {
	token, err := share.Encode(p)
	if err != nil {
		token = "unencodable"
	}
	key := token + "|" + string(opts.Preset) + "|" + string(opts.Style)

	if v, ok := s.sessions.Get(key); ok {
		return v.(*share.Session), key
	}
	sess := share.NewSession(func(ctx context.Context) (*poster.Poster, error) {
		return s.composer.BuildPoster(ctx, p, opts)
	})
	if err := s.sessions.Add(key, sess, cache.DefaultExpiration); err != nil {
		if v, ok := s.sessions.Get(key); ok {
			return v.(*share.Session), key
		}
	}
	return sess, key
}

func (s *Server) archive(token string, p *poster.Poster) {
	if token == "" {
		return
	}
	path := filepath.Join(s.cfg.OutDir, token+".png")
	if err := util.WriteFileAtomic(path, p.PNG); err != nil {
		s.log.Warn("poster archive failed", zap.Error(err), zap.String("path", path))
	}
}

// posterBlob serves a previously rendered poster by token; each hit
// refreshes the token's lifetime.
func (s *Server) posterBlob(c *gin.Context) {
	p, ok := s.blobs.Get(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "poster expired"})
		return
	}
	c.Header("X-Poster-Width", strconv.Itoa(p.Width))
	c.Header("X-Poster-Height", strconv.Itoa(p.Height))
	c.Data(http.StatusOK, "image/png", p.PNG)
}

func (s *Server) shareLink(c *gin.Context) {
	var p reading.Payload
	if err := c.BindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := p.Normalize(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	url, err := share.URL(s.cfg.SiteURL, &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	token, _ := share.Encode(&p)
	c.JSON(http.StatusOK, gin.H{"url": url, "token": token, "text": reading.ExportText(&p)})
}

func (s *Server) shareDecode(c *gin.Context) {
	p, err := share.Decode(c.Query(share.QueryParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// qrHandler returns a QR PNG for a share link (or any text).
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = s.cfg.SiteURL
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
