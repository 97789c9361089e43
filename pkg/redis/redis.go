package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Period view payloads are cached for a short window so repeated chat
// queries don't hit Postgres every time.
const ViewCacheTTL = 60 * time.Second

var viewPeriods = []string{"today", "tomorrow", "week"}

type IRedis interface {
	SetView(ctx context.Context, userID string, period string, payload string, expiration time.Duration) error
	GetView(ctx context.Context, userID string, period string) (string, error)
	InvalidateViews(ctx context.Context, userID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func viewKey(userID string, period string) string {
	return fmt.Sprintf("agenda:view:%s:%s", userID, period)
}

func (r *redisClient) SetView(ctx context.Context, userID string, period string, payload string, expiration time.Duration) error {
	key := viewKey(userID, period)
	err := r.client.Set(ctx, key, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching view for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetView(ctx context.Context, userID string, period string) (string, error) {
	key := viewKey(userID, period)
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting cached view for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) InvalidateViews(ctx context.Context, userID string) error {
	keys := make([]string, 0, len(viewPeriods))
	for _, period := range viewPeriods {
		keys = append(keys, viewKey(userID, period))
	}

	if _, err := r.client.Del(ctx, keys...).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error invalidating cached views for user %s: %v", userID, err))
		return err
	}

	return nil
}
