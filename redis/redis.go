package redis

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the client. Redis only backs unread-message counters,
// so an unreachable server leaves Client nil and the counters disabled
// instead of taking the API down.
func InitRedis() {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis, unread counters disabled: %v", err)
		return
	}

	Client = client
	fmt.Println("✅ Connected to Redis")
}

// UnreadKey is the counter key for messages userID has not yet read from
// counterpart fromID.
func UnreadKey(userID, fromID uint) string {
	return fmt.Sprintf("unread:%d:%d", userID, fromID)
}
