package api

import (
	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"

	"barkday/cmd/middleware"
	"barkday/internal/service"
)

type Routers struct {
	Service        service.Service
	AdminPass      string
	AllowedOrigins []string
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.New(corsConfig(r.AllowedOrigins)))

	app.GET("/health", r.Service.Health)

	apiGroup := app.Group("/api")

	apiGroup.POST("/guestbook", r.Service.CreateGuestbookEntry)
	apiGroup.GET("/guestbook", r.Service.ListGuestbookEntries)
	apiGroup.DELETE("/guestbook/:id", middleware.AdminGuard(r.AdminPass), r.Service.DeleteGuestbookEntry)

	apiGroup.POST("/rsvp", r.Service.CreateRSVP)
	apiGroup.GET("/rsvp", middleware.AdminGuard(r.AdminPass), r.Service.ListRSVPs)

	return app
}

// corsConfig permits only the configured origins; an empty list means
// permit-all. Credentials stay disabled either way.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Pass"},
		AllowCredentials: false,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
