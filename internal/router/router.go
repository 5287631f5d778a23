package router

import (
	"time"

	"chhaon/internal/cart"
	"chhaon/internal/checkout"
	"chhaon/internal/filter"
	"chhaon/internal/menu"
	"chhaon/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New assembles the API surface over the catalog and the per-session
// cart and checkout state. corsOrigins lists the browser origins the
// menu front-end is served from.
func New(catalog *menu.Catalog, sessions *cart.Sessions, flows *checkout.Flows, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.Session())
	r.Use(middleware.RequestLogger())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menuHandler := menu.NewHandler(catalog)
	filterHandler := filter.NewHandler(catalog)
	cartHandler := cart.NewHandler(sessions, catalog)
	checkoutHandler := checkout.NewHandler(flows)

	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("", menuHandler.GetMenu)
		menuGroup.GET("/filters", filterHandler.GlobalFilters)
		menuGroup.GET("/categories/:name", filterHandler.GetCategory)
		menuGroup.GET("/categories/:name/filters", filterHandler.CategoryFilters)
	}

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:name", cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:name", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.Clear)
		cartGroup.PUT("/panel", cartHandler.SetPanel)
		cartGroup.POST("/close", checkoutHandler.Close)
	}

	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("", checkoutHandler.Status)
		checkoutGroup.POST("", checkoutHandler.Request)
		checkoutGroup.POST("/back", checkoutHandler.Back)
		checkoutGroup.POST("/submit", checkoutHandler.Submit)
	}

	return r
}
