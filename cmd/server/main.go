package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youruser/deckcode/internal/api"
	"github.com/youruser/deckcode/internal/cards"
	"github.com/youruser/deckcode/internal/config"
)

func main() {
	cfg := config.FromEnv()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Load the catalog once at startup (best-effort)
	catalog, err := cards.LoadCatalogFromDataDir(cfg.DataDir)
	if err != nil {
		log.Println("Warning: failed to load card catalog at startup:", err)
		catalog, _ = cards.NewCatalog(nil)
	}
	log.Printf("loaded %d cards from %s", catalog.Len(), cfg.DataDir)

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(catalog, cfg.QRSize))

	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
