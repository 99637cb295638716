package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/config"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/routes"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/rs/cors"
)

func main() {
	config.InitDB()

	hub := services.NewStudyHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)

	// Credentialed CORS so the session cookie survives cross-origin
	// frontend dev servers.
	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	return strings.Split(raw, ",")
}
