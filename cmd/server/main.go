package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/beatystore/admin-gateway/internal/api"
	"github.com/beatystore/admin-gateway/internal/cache"
	"github.com/beatystore/admin-gateway/internal/config"
	"github.com/beatystore/admin-gateway/internal/logging"
	"github.com/beatystore/admin-gateway/internal/session"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := session.OpenStore(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer store.Close()

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	sess := session.NewManager(store, client)

	// Hydrate before serving so no request observes a half-loaded session.
	if err := sess.Hydrate(); err != nil {
		log.Printf("[WARN] Session hydration failed: %v", err)
	}

	caches := cache.NewRegistry(sess, client)
	handler := api.NewHandler(client, sess, caches)

	// Populate the caches when a persisted session survived the restart.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		caches.WarmUp(ctx)
	}()

	router := setupRouter(handler, sess, cfg)

	port := cfg.Port
	go func() {
		logging.Info("server starting", map[string]interface{}{
			"port":     port,
			"upstream": cfg.UpstreamBaseURL,
		})
		if err := router.Run(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func setupRouter(handler *api.Handler, sess *session.Manager, cfg *config.Config) *gin.Engine {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}
	if cfg.AllowedOrigin != "" {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	router.Use(cors.New(corsCfg))

	// Health and readiness endpoints
	router.GET("/live", func(c *gin.Context) { c.Status(200) })
	router.GET("/ready", handler.Health)
	router.GET("/health", handler.Health)

	// Session endpoints are reachable without a session; CreateSession is
	// the login screen's target and answers authenticated callers with a
	// redirect back to the dashboard.
	sessionGroup := router.Group("/api/session")
	{
		sessionGroup.POST("", handler.CreateSession)
		sessionGroup.GET("", handler.GetSession)
		sessionGroup.DELETE("", handler.DeleteSession)
		sessionGroup.POST("/refresh", api.RequireSession(sess), handler.RefreshSession)
	}

	// Admin screens; everything behind the session guard.
	admin := router.Group("/api/admin")
	admin.Use(api.RequireSession(sess))
	{
		admin.GET("/brands", handler.ListBrands)
		admin.GET("/brands/:id", handler.GetBrand)
		admin.POST("/brands", handler.CreateBrand)
		admin.PUT("/brands/:id", handler.UpdateBrand)
		admin.DELETE("/brands/:id", handler.DeleteBrand)
		admin.POST("/brands/refresh", handler.RefreshBrands)

		admin.GET("/categories", handler.ListCategories)
		admin.GET("/categories/:id", handler.GetCategory)
		admin.POST("/categories", handler.CreateCategory)
		admin.PUT("/categories/:id", handler.UpdateCategory)
		admin.DELETE("/categories/:id", handler.DeleteCategory)
		admin.POST("/categories/refresh", handler.RefreshCategories)

		admin.GET("/colors", handler.ListColors)
		admin.POST("/colors", handler.AddColor)
		admin.DELETE("/colors/:id", handler.DeleteColor)
		admin.POST("/colors/refresh", handler.RefreshColors)

		admin.GET("/variants", handler.ListVariants)
		admin.POST("/variants", handler.AddVariant)
		admin.DELETE("/variants/:id", handler.DeleteVariant)
		admin.POST("/variants/refresh", handler.RefreshVariants)

		admin.GET("/products", handler.ListProducts)
		admin.GET("/products/:id", handler.GetProduct)
		admin.POST("/products", handler.CreateProduct)
		admin.PUT("/products/:id", handler.UpdateProduct)
		admin.DELETE("/products/:id", handler.DeleteProduct)
		admin.POST("/products/refresh", handler.RefreshProducts)

		admin.GET("/orders", handler.ListOrders)
		admin.GET("/orders/:id", handler.GetOrder)
		admin.PUT("/orders/:id/status", handler.UpdateOrderStatus)

		admin.GET("/dashboard", handler.GetDashboard)
		admin.PUT("/dashboard/year", handler.SetDashboardYear)
		admin.POST("/dashboard/refresh", handler.RefreshDashboard)

		// User management is Admin-only; Staff sessions stop here.
		users := admin.Group("/users")
		users.Use(api.RequireAdmin(sess))
		{
			users.GET("", handler.ListUsers)
			users.DELETE("/:id", handler.DeleteUser)
			users.POST("/:id/role", handler.SetUserRole)
		}
	}

	// Root endpoint for basic info
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "admin-gateway",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	return router
}
