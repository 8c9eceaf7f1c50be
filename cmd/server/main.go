package main

import (
	"log"
	"os"
	"time"

	"auditpeer/internal/router"
	"auditpeer/internal/services"
	"auditpeer/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// State is process-local: everything rebuilds from the seed fixtures
	// on each start.
	st := store.New()
	st.Seed()

	views := services.NewViewCounter(st, 500*time.Millisecond)
	defer views.Close()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	sessionStore := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("auditpeer_session", sessionStore))

	router.RegisterRoutes(r, st, views)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("AuditPeer server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
