package configs

import (
	"fmt"

	"github.com/Rakhulsr/go-restaurant/app/repositories"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenStore builds the key/value backend named by STORAGE_DRIVER. The returned
// close function releases any connection it opened.
func OpenStore(env ENV, logger *zap.Logger) (repositories.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch env.StorageDriver {
	case StorageFile, "":
		store, err := repositories.NewFileStore(env.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using file storage", zap.String("path", env.StoragePath))
		return store, noop, nil

	case StorageMemory:
		return repositories.NewMemoryStore(), noop, nil

	case StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     env.RedisAddr,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
		})
		store := repositories.NewRedisStore(client, env.RedisPrefix, env.RedisTTL)
		logger.Debug("using redis storage", zap.String("addr", env.RedisAddr))
		return store, store.Close, nil

	case StorageMySQL:
		db, err := OpenConnection(env, logger)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewGormStore(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", env.StorageDriver)
	}
}

func NewCodec(env ENV) (repositories.Codec, error) {
	keys, err := env.StorageKeys()
	if err != nil {
		return nil, err
	}
	if keys == nil {
		return repositories.JSONCodec{}, nil
	}
	return repositories.NewSecureCodec(keys.HashKey, keys.BlockKey), nil
}
