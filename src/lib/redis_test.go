package lib

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestGetRedisClientWithoutHost(t *testing.T) {
	NewRedisClient(nil)
	t.Setenv("REDIS_HOST", "")

	assert.Nil(t, GetRedisClient(), "no client without a parseable REDIS_HOST")
}

func TestNewRedisClientReplacesShared(t *testing.T) {
	custom := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer NewRedisClient(nil)

	assert.Same(t, custom, NewRedisClient(custom))
	assert.Same(t, custom, GetRedisClient(), "the shared handle is the installed client")
}
