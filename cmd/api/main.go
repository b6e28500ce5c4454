package main

import (
	"log"
	"net/http"

	"github.com/PainelServices01/user-admin-GO/internal/config"
	dbpkg "github.com/PainelServices01/user-admin-GO/internal/db"
	"github.com/PainelServices01/user-admin-GO/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
