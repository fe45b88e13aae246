package admin

import (
	"MITSAssistant/controllers"
	"MITSAssistant/middleware"
	"MITSAssistant/pkg/app"

	"github.com/gin-gonic/gin"
)

// Register registers the operator endpoints behind the admin key gate.
func Register(g *gin.RouterGroup, a *app.App) {
	admin := controllers.NewAdminController(a.Store, a.Scraper, a.Log)

	gated := g.Group("")
	gated.Use(middleware.AdminKey(a.Config.AdminKey, a.Config.AdminKeyBcrypt))
	{
		gated.POST("/scrape", admin.Scrape)
		gated.POST("/scrape/refresh", admin.Refresh)
		gated.GET("/content", admin.ListContent)
		gated.POST("/seed", admin.Seed)
	}
}
