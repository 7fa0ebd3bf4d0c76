package routes

import (
	"os"
	"path/filepath"
	"time"

	"antshop/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the dialogue endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/chat", hb.ChatHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterStaticRoutes serves dir under /static and its index.html at /.
// It is a no-op when dir is empty or missing.
func RegisterStaticRoutes(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	r.Static("/static", dir)
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err == nil {
		r.StaticFile("/", index)
	}
}

// RegisterRoutes sets up global middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, staticDir string) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterStaticRoutes(r, staticDir)
}
