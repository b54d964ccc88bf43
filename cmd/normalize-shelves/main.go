// Command normalize-shelves backfills a level of 0 onto shelf documents
// that were imported without one, then exits. Run it once after migrating
// data from a deployment that predates the level field.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/oleksiiv/warehouse-golang/internal/database"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on system environment")
	}

	db, err := database.OpenDB(logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	st := store.New(db, logger)
	updated, err := st.NormalizeShelfLevels(context.Background())
	if err != nil {
		logger.Fatal("normalization failed", zap.Error(err))
	}

	logger.Info("done", zap.Int("shelvesUpdated", updated))
}
