package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"golden-seed.backend/internal/config"
	"golden-seed.backend/internal/domain/entities"
	"golden-seed.backend/internal/infrastructure/repositories"
	"golden-seed.backend/internal/usecases"
	"golden-seed.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
)

func main() {
	email := flag.String("email", "", "email of the user to provision (required)")
	tier := flag.String("tier", "free", "subscription tier: free, indie, studio or enterprise")
	keyName := flag.String("key-name", "", "display name for the API key")
	flag.Parse()

	if err := run(*email, *tier, *keyName); err != nil {
		log.Fatal(err)
	}
}

func run(email, tier, keyName string) error {
	if email == "" {
		return fmt.Errorf("-email is required")
	}

	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := loadCfg()
	logger.Init(cfg.Server.Env)

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	provisionUsecase := usecases.NewProvisionUsecase(repositories.NewProvisioningRepository(db))
	ctx := context.Background()

	user, err := provisionUsecase.CreateUser(ctx, &entities.CreateUserInput{Email: email})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	sub, err := provisionUsecase.CreateSubscription(ctx, &entities.CreateSubscriptionInput{
		UserID: user.ID,
		Tier:   tier,
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	key, err := provisionUsecase.CreateApiKey(ctx, &entities.CreateApiKeyInput{
		UserID: user.ID,
		Name:   keyName,
	})
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}

	fmt.Printf("User:         %s (%s)\n", user.Email, user.ID)
	fmt.Printf("Tier:         %s (%d chunks/month, %d req/min)\n", sub.Tier, sub.ChunksLimit, sub.RateLimit)
	fmt.Printf("Key prefix:   %s\n", key.KeyPrefix)
	fmt.Printf("API key:      %s\n", key.ApiKey)
	fmt.Println()
	fmt.Println("Store the API key now; it cannot be recovered later.")
	return nil
}
