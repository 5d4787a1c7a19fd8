package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"wall-coverage-service/internal/adapters/repositories"
	"wall-coverage-service/internal/api"
	"wall-coverage-service/internal/config"
	"wall-coverage-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite trajectory store behind the repository port and starts
// the HTTP server around the coverage planner.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/trajectories.db")
	port := config.Get("PORT", "8080")
	toolSpeed := config.GetFloat("TOOL_SPEED", services.DefaultToolSpeed)
	corsOrigins := splitOrigins(config.Get("CORS_ORIGINS", ""))

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Idempotent schema init on startup for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteTrajectoryRepository(db)
	router := api.NewRouter(repo, toolSpeed, corsOrigins)

	// Write timeout leaves room for large walls: a 50x20m plan with the
	// minimum tool width produces a few hundred sweep lines of waypoints.
	log.Printf("Server listening addr=:%s tool_speed=%.2fm/s", port, toolSpeed)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
