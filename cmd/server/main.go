package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/youruser/tarotshare/internal/api"
	"github.com/youruser/tarotshare/internal/artwork"
	"github.com/youruser/tarotshare/internal/cards"
	"github.com/youruser/tarotshare/internal/config"
	"github.com/youruser/tarotshare/internal/logging"
	"github.com/youruser/tarotshare/internal/poster"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.FontDir != "" {
		if err := poster.UseFontDir(cfg.FontDir); err != nil {
			log.Warn("font dir not usable, keeping built-in fonts", zap.Error(err), zap.String("dir", cfg.FontDir))
		}
	}

	// Load the deck at startup (best-effort; the store stays empty on failure).
	store := cards.NewStore()
	if err := store.LoadDataDir(cfg.DataDir); err != nil {
		log.Warn("failed to load deck at startup", zap.Error(err))
	} else {
		log.Info("deck loaded", zap.Int("cards", len(store.Cards())))
	}

	art := &artwork.Library{
		Resolver: artwork.Resolver{BaseURL: cfg.ArtBaseURL},
		Fetcher:  artwork.NewFetcher(cfg.FetchTimeout),
	}
	composer := poster.NewComposer(store, art, cfg.Brand, cfg.SiteURL)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewServer(log, cfg, store, composer))

	log.Info("starting server", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal("server exited", zap.Error(err))
	}
}
