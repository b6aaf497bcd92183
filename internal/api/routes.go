package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/cards", s.listCards)
		api.GET("/cards/:id", s.getCard)
		api.POST("/cards/filter", s.filterCards)
		api.POST("/poster", s.buildPoster)
		api.GET("/poster", s.posterFromLink)
		api.GET("/poster/blob/:token", s.posterBlob)
		api.POST("/share/link", s.shareLink)
		api.GET("/share/decode", s.shareDecode)
		api.GET("/qr", s.qrHandler)
	}
}
