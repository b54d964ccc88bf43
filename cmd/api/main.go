package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/oleksiiv/warehouse-golang/internal/database"
	"github.com/oleksiiv/warehouse-golang/internal/handlers"
	"github.com/oleksiiv/warehouse-golang/internal/routes"
	"github.com/oleksiiv/warehouse-golang/internal/services"
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
	svc := services.New(st, logger)

	app := &handlers.Handlers{
		Services: svc,
		Log:      logger,
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting api server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
