package initializers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"ims-backend/config"
)

// InitRedis returns nil when no address is configured; the throttle layer
// falls back to its in-process limiter in that case.
func InitRedis() *redis.Client {
	if config.Conf.Redis.Addr == "" {
		log.Info("redis is not configured, using in-process rate limiting")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Conf.Redis.Addr,
		Password: config.Conf.Redis.Password,
		DB:       config.Conf.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis ping failed, using in-process rate limiting")
		return nil
	}
	log.Info("redis client initialized")
	return client
}
