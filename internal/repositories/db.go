// Package repositories provides the data access layer. It owns the gorm
// connection, schema migration, and the redis-backed cache service.
package repositories

import (
	"log"
	"os"
	"time"

	"github.com/SanmaySarada/CardGeniusMVP/internal/config"
	"github.com/SanmaySarada/CardGeniusMVP/internal/models"
	"github.com/SanmaySarada/CardGeniusMVP/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared database instance.
var DB *gorm.DB

// CacheService is the shared redis cache, nil when redis is disabled.
var CacheService *cache.CacheService

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB connects to Postgres, runs migrations, and wires up redis.
func InitDB() error {
	initPostgres()

	if config.GetEnv("REDIS_DISABLED", "") != "true" {
		redisCfg := &cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		}
		redisClient := cache.NewRedisClient(redisCfg)
		CacheService = cache.NewCacheService(redisClient, 24*time.Hour)
	}

	return DB.AutoMigrate(
		&models.Card{},
		&models.BankConnection{},
		&models.LocationPing{},
		&models.Notification{},
	)
}

func initPostgres() {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "cardgenius") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	db.Logger = logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	log.Println("PostgreSQL connected")
}
