package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/app"
	"github.com/AhnKwangHyuny/faddy-pay-stream/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
