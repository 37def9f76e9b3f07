package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/companyvote/api/internal/adapters/handler/http"
	"github.com/companyvote/api/internal/adapters/notifier/webhook"
	"github.com/companyvote/api/internal/adapters/repository/postgres"
	"github.com/companyvote/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dbHost, dbPort, dbUser, dbPass, dbName, sslMode, port, webhookURL string

	flag.StringVar(&dbHost, "db-host", os.Getenv("POSTGRES_HOST"), "Database host")
	flag.StringVar(&dbPort, "db-port", os.Getenv("POSTGRES_PORT"), "Database port")
	flag.StringVar(&dbUser, "db-user", os.Getenv("POSTGRES_USER"), "Database user")
	flag.StringVar(&dbPass, "db-pass", os.Getenv("POSTGRES_PASSWORD"), "Database password")
	flag.StringVar(&dbName, "db-name", os.Getenv("POSTGRES_DB"), "Database name")
	flag.StringVar(&sslMode, "db-sslmode", envOr("DATABASE_SSLMODE", "disable"), "Database TLS verification mode")
	flag.StringVar(&port, "port", envOr("PORT", "8080"), "Listen port")
	flag.StringVar(&webhookURL, "webhook-url", os.Getenv("WEBHOOK_URL"), "Vote notification webhook URL (empty disables)")
	flag.Parse()

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", dbUser, dbPass, dbHost, dbPort, dbName, sslMode)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := postgres.EnsureSchema(setupCtx, db); err != nil {
		cancelSetup()
		log.Fatal(err)
	}
	if err := postgres.SeedDefaultCompanies(setupCtx, db); err != nil {
		cancelSetup()
		log.Fatal(err)
	}
	cancelSetup()

	companyRepo := postgres.NewCompanyRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	notifier := webhook.New(webhookURL)

	companyService := services.NewCompanyService(companyRepo)
	voteService := services.NewVoteService(companyRepo, voteRepo, notifier)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)

	handler := http.NewHandler(
		http.NewCompanyHandler(companyService),
		http.NewVoteHandler(voteService),
		http.NewLeaderboardHandler(leaderboardService),
		http.NewAdminHandler(companyService, voteService),
	)
	server := &stdhttp.Server{Addr: "0.0.0.0:" + port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
