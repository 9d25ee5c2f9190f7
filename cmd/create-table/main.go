package main

import (
	"context"
	"time"

	"github.com/jpendyala/money-management-expense-tracker/internal/infra/dynamo"
	"github.com/jpendyala/money-management-expense-tracker/internal/logger"
)

// Provisions the transactions table and exits. Re-running against an existing
// table reports the ResourceInUseException and exits non-zero; this command
// does not special-case it.
func main() {
	log := logger.New("info")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := dynamo.NewStore(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create DynamoDB client")
	}

	log.Info().
		Str("table", dynamo.TableName).
		Str("region", dynamo.Region).
		Msg("Creating table, this may take a few seconds...")

	if err := store.EnsureTable(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error creating table")
	}

	log.Info().Str("table", dynamo.TableName).Msg("Table created successfully")
}
