package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"pyxpay-admin/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the redis client used by the redis state backend
func ConnectRedis(cfg *config.StoreConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("Connected to redis at %s", cfg.RedisAddr)
	return rdb, nil
}
