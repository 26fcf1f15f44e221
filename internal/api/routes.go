package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/cards", h.listCards)
		api.POST("/filter", h.filterHandler)

		api.POST("/decks", h.createDeck)
		api.POST("/decks/import", h.importDeck)
		api.GET("/decks/:id", h.getDeck)
		api.DELETE("/decks/:id", h.deleteDeck)
		api.POST("/decks/:id/cards/:card", h.addCard)
		api.DELETE("/decks/:id/cards/:card", h.removeCard)
		api.POST("/decks/:id/reset", h.resetDeck)
		api.GET("/decks/:id/export", h.exportDeck)
		api.GET("/decks/:id/qr", h.deckQR)
		api.GET("/decks/:id/image", h.deckImage)

		api.GET("/code", h.decodeCode)
		api.GET("/code/:code", h.decodeCode)
		api.POST("/code", h.encodeCode)
		api.GET("/qr", h.qrHandler)
	}
}
