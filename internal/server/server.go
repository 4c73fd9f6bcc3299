package server

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pressly/goose/v3"

	"uno-server/internal/database"
)

type Server struct {
	port              int
	db                database.Service
	room              *Room
	connectionManager *ConnectionManager
	rateLimiter       *RateLimiter
	health            *ConnectionHealth
	matchStore        *MatchStore
}

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	s := &Server{
		port:              port,
		room:              NewRoom(),
		connectionManager: NewConnectionManager(),
		rateLimiter:       NewRateLimiter(20, time.Second),
		health:            NewConnectionHealth(),
	}

	// The match-results store is optional: without DATABASE_URL the server
	// runs purely in memory.
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dbService, err := database.New(databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := runMigrations(dbService.DB()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		s.db = dbService
		s.matchStore = NewMatchStore(dbService.DB())
	} else {
		log.Println("DATABASE_URL not set, match results will not be recorded")
	}

	go s.cleanupTask()

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// runMigrations applies database migrations using goose.
func runMigrations(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "./db/migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Database migrations applied successfully")
	return nil
}

// cleanupTask periodically drops rate limiter state for idle connections.
func (s *Server) cleanupTask() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.rateLimiter.Cleanup()
	}
}
