package main

import (
	"facility-capacity-service/internal/adapters/repositories"
	"facility-capacity-service/internal/api"
	"facility-capacity-service/internal/config"
	"facility-capacity-service/internal/platform/db"
	"facility-capacity-service/internal/ports"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires the Postgres run repository behind the port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	// Persistence is optional: without DATABASE_URL the service still plans and
	// optimizes, it just does not record runs.
	var repo ports.RunRepository
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(conn); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewPostgresRunRepository(conn)
	} else {
		log.Println("DATABASE_URL not set (run persistence disabled)")
	}

	router := api.NewRouter(repo)

	// Timeouts sized for long grid searches over wide capacity bounds.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
