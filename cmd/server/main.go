package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"

	handler "github.com/foodsquad/api/internal/adapters/handler/http"
	mongorepo "github.com/foodsquad/api/internal/adapters/repository/mongo"
	"github.com/foodsquad/api/internal/adapters/repository/postgres"
	"github.com/foodsquad/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mongorepo.Connect(ctx, getEnv("MONGO_URI", "mongodb://localhost:27017"), getEnv("MONGO_DB", "foodsquad"))
	if err != nil {
		slog.Error("failed to connect to mongodb", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		slog.Error("failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	catalogDB, err := sql.Open("postgres", dbConnString())
	if err != nil {
		slog.Error("failed to open restaurant catalog", "error", err)
		os.Exit(1)
	}
	defer catalogDB.Close()

	squadRepo := mongorepo.NewSquadRepository(db)
	pollRepo := mongorepo.NewPollRepository(db)
	restaurantFinder := postgres.NewRestaurantRepository(catalogDB)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	squadService := services.NewSquadService(squadRepo)
	sessionService := services.NewSessionService(squadRepo, restaurantFinder, rng)
	pollService := services.NewPollService(pollRepo, squadRepo, restaurantFinder)

	squadHandler := handler.NewSquadHandler(squadService, sessionService)
	pollHandler := handler.NewPollHandler(pollService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantFinder)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Warn("JWT_SECRET not set")
	}

	router := handler.NewHandler(squadHandler, pollHandler, restaurantHandler, []byte(jwtSecret))
	server := &stdhttp.Server{Addr: "0.0.0.0:" + getEnv("PORT", "8080"), Handler: router}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		os.Getenv("POSTGRES_DB"),
	)
}
