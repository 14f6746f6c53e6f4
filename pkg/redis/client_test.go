package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoubrebai/autoparts-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:secret@localhost:6380/2"})
	assert.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "secret", opts.Password)
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{Address: "cache:6379", DB: 1, PoolSize: 5})
	assert.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 1, opts.DB)
	assert.Equal(t, 5, opts.PoolSize)
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	assert.Equal(t, "ap:cache:dashboard", c.CacheKey("dashboard"))
	assert.Equal(t, "ap:lock:audit-worker", c.LockKey("audit-worker"))
}
