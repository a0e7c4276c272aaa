package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/moneta-app/finance-tracker/docs"
	"github.com/moneta-app/finance-tracker/internal/ai"
	"github.com/moneta-app/finance-tracker/internal/auth"
	"github.com/moneta-app/finance-tracker/internal/command"
	"github.com/moneta-app/finance-tracker/internal/config"
	"github.com/moneta-app/finance-tracker/internal/db"
	httpserver "github.com/moneta-app/finance-tracker/internal/http"
	"github.com/moneta-app/finance-tracker/internal/http/handlers"
	rl "github.com/moneta-app/finance-tracker/internal/http/rate_limiter"
	"github.com/moneta-app/finance-tracker/internal/repo"
)

// @title Finance Tracker API
// @version 1.0
// @description REST API for tracking expenses and incomes, with statistics and a natural-language assistant.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer rdb.Close()

	go rl.StartVisitorCleanupLoop()

	transactionRepo := repo.NewPostgresTransactionRepository(database)
	handlers.SetTransactionRepo(transactionRepo)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetRefreshStore(auth.NewRedisRefreshStore(rdb))

	dispatcher := command.NewDispatcher(transactionRepo)
	client := ai.NewOpenAIClient(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
	handlers.SetInterpreter(ai.NewInterpreter(client, dispatcher))

	r := httpserver.NewRouter()
	log.Printf("server running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
