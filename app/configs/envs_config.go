package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMySQL  = "mysql"
)

type ENV struct {
	AppEnv   string
	LogLevel string

	TaxRate        decimal.Decimal
	CurrencySymbol string

	StorageDriver   string
	StoragePath     string
	StorageHashKey  string
	StorageBlockKey string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	RedisTTL      time.Duration
}

// LoadEnv reads .env (if present) and the process environment.
func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}
	return ReadEnv()
}

// ReadEnv only consults the process environment.
func ReadEnv() ENV {
	return ENV{
		AppEnv:          getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		TaxRate:         getEnvDecimal("TAX_RATE", "0.0825"),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "$"),
		StorageDriver:   getEnv("STORAGE_DRIVER", StorageFile),
		StoragePath:     getEnv("STORAGE_PATH", ".restaurant"),
		StorageHashKey:  os.Getenv("STORAGE_HASH_KEY"),
		StorageBlockKey: os.Getenv("STORAGE_BLOCK_KEY"),
		DBHost:          getEnv("DB_HOST", "127.0.0.1"),
		DBUser:          getEnv("DB_USER", "root"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getEnv("DB_NAME", "restaurant"),
		DBPort:          getEnv("DB_PORT", "3306"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPrefix:     getEnv("REDIS_PREFIX", "restaurant:"),
		RedisTTL:        getEnvDuration("REDIS_TTL", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}

func getEnvDecimal(key, def string) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		return decimal.RequireFromString(def)
	}
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: %s=%q is not a valid rate, using %s", key, v, def)
		return decimal.RequireFromString(def)
	}
	return d
}
