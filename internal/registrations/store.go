package registrations

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/communityday/registrations/config"
	"github.com/communityday/registrations/internal/models"
	"github.com/communityday/registrations/pkg/database"
	"github.com/communityday/registrations/pkg/redis"
	"github.com/communityday/registrations/pkg/storage"
)

// Store persists registrations. Put is an unconditional insert-or-replace keyed by ID.
type Store interface {
	Put(ctx context.Context, reg *models.Registration) error
}

// OpenStore connects the backend selected by cfg.Store.Backend. The returned
// close function releases the connection and is safe to call once.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	creds := storage.Credentials{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		client, err := storage.NewDynamoDB(ctx, storage.DynamoDBConfig{Credentials: creds, Endpoint: cfg.AWS.DynamoDBEndpoint}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		if cfg.AWS.CreateTable {
			if err := client.EnsureTable(ctx, cfg.Store.TableName); err != nil {
				return nil, nil, fmt.Errorf("dynamodb: %w", err)
			}
		}
		logger.Info("store ready", zap.String("backend", cfg.Store.Backend), zap.String("table", cfg.Store.TableName))
		return NewDynamoRepository(client, cfg.Store.TableName), noop, nil

	case config.BackendPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), cfg.Database.MaxConns, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("store ready", zap.String("backend", cfg.Store.Backend))
		return NewPostgresRepository(pool), pool.Close, nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		if err := database.MigrateSQLite(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("store ready", zap.String("backend", cfg.Store.Backend), zap.String("path", cfg.SQLite.Path))
		return NewSQLiteRepository(db), func() { _ = db.Close() }, nil

	case config.BackendRedis:
		rdb, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		logger.Info("store ready", zap.String("backend", cfg.Store.Backend), zap.String("key_prefix", cfg.Redis.KeyPrefix))
		return NewRedisRepository(rdb, cfg.Redis.KeyPrefix), func() { _ = rdb.Close() }, nil

	case config.BackendS3:
		s3Client, err := storage.NewS3(ctx, storage.S3Config{Credentials: creds, Bucket: cfg.AWS.S3Bucket, Prefix: cfg.AWS.S3Prefix}, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("s3: %w", err)
		}
		logger.Info("store ready", zap.String("backend", cfg.Store.Backend), zap.String("bucket", s3Client.Bucket()))
		return NewS3Repository(s3Client, s3Client.Prefix()), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
