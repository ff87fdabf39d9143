// Package main runs the registration handler as an AWS Lambda behind an API Gateway HTTP API.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/communityday/registrations/config"
	"github.com/communityday/registrations/internal/registrations"
)

func main() {
	bootLogger := newLogger("info")
	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatal("load config", zap.Error(err))
	}

	logger := newLogger(cfg.Log.Level)
	defer logger.Sync()

	// The store outlives individual invocations; Lambda reuses the process between events.
	store, closeStore, err := registrations.OpenStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("store", zap.Error(err), zap.String("backend", cfg.Store.Backend))
	}
	defer closeStore()

	handler := registrations.NewHandler(registrations.NewService(store, logger), logger)
	logger.Info("lambda ready", zap.String("store", cfg.Store.Backend), zap.String("table", cfg.Store.TableName))
	lambda.Start(handler.HandleEvent)
}

func newLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		config.Level = lvl
	}
	logger, _ := config.Build()
	return logger
}
