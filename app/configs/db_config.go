package configs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxRetries = 5
	retryDelay = 2 * time.Second
)

func (e ENV) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

func OpenConnection(env ENV, logger *zap.Logger) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("connecting to database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.String("host", env.DBHost),
			zap.String("name", env.DBName),
		)

		db, err := gorm.Open(mysql.Open(env.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("database connected")
					return db, nil
				}
			}
			err = pingErr
		}

		lastErr = err
		logger.Warn("database not reachable, retrying", zap.Error(err), zap.Duration("delay", retryDelay))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
