package redis

import (
	"os"
	"testing"
)

func TestInitRedisUnreachableLeavesClientNil(t *testing.T) {
	os.Setenv("REDIS_ADDR", "127.0.0.1:1")
	defer os.Unsetenv("REDIS_ADDR")

	Client = nil
	InitRedis()

	if Client != nil {
		t.Fatalf("expected Client to stay nil when redis is unreachable")
	}
}

func TestUnreadKey(t *testing.T) {
	if key := UnreadKey(7, 3); key != "unread:7:3" {
		t.Fatalf("unexpected key %s", key)
	}
}
