package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/statement-ledger/pkg/events"
	"github.com/chris/statement-ledger/pkg/handlers"
	statementshandler "github.com/chris/statement-ledger/pkg/handlers/statements"
	usershandler "github.com/chris/statement-ledger/pkg/handlers/users"
	"github.com/chris/statement-ledger/pkg/ledger"
	"github.com/chris/statement-ledger/pkg/storage"
	dynamostore "github.com/chris/statement-ledger/pkg/storage/dynamodb"
	"github.com/chris/statement-ledger/pkg/storage/memory"
	"github.com/chris/statement-ledger/pkg/users"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	tokens := users.NewTokenIssuer([]byte(jwtSecret), 24*time.Hour)

	store := buildStore(logger)
	publisher := buildPublisher(logger)

	ledgerSvc := ledger.New(store, store)
	usersSvc := users.NewService(store, tokens)

	usersHandler := usershandler.NewUsersHandler(usersSvc)
	statementsHandler := statementshandler.NewStatementsHandler(ledgerSvc, publisher)

	router := handlers.NewRouter(logger, tokens, usersHandler, statementsHandler)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	logger.Info("starting server", "port", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStore wires the DynamoDB store when table names are configured and
// falls back to the in-memory store for local development.
func buildStore(logger *slog.Logger) storage.Storage {
	usersTable := os.Getenv("DYNAMODB_USERS_TABLE_NAME")
	statementsTable := os.Getenv("DYNAMODB_STATEMENTS_TABLE_NAME")

	if usersTable == "" || statementsTable == "" {
		logger.Warn("DynamoDB table names not set, using in-memory store")
		return memory.New()
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	return dynamostore.New(dynamodb.NewFromConfig(cfg), usersTable, statementsTable)
}

// buildPublisher wires the SQS event publisher when a queue is configured.
func buildPublisher(logger *slog.Logger) events.Publisher {
	queueURL := os.Getenv("SQS_EVENTS_QUEUE_URL")
	if queueURL == "" {
		logger.Warn("SQS_EVENTS_QUEUE_URL not set, statement events disabled")
		return &events.NoOpPublisher{}
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	return events.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
}
