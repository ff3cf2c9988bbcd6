package config

import (
	"context"
	"time"

	"hostel/services/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis trả về nil khi chưa cấu hình REDIS_ADDR hoặc không ping được,
// khi đó danh sách phòng được đọc thẳng từ DB.
func ConnectRedis(cfg RedisConfig, log logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("REDIS_ADDR not set, room cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis, continuing without cache: %v", err)
		_ = rdb.Close()
		return nil
	}

	log.Info("Connected to Redis at %s", cfg.Addr)
	return rdb
}
