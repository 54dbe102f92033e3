package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/redisstore"
	"github.com/jhoicas/kardex-textil/pkg/config"
)

func TestNewClient_ServidorInaccesible(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := redisstore.NewClient(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestSave_ServidorCaidoDevuelveError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer rdb.Close()

	err := redisstore.New(rdb, "k").Save(context.Background(), nil)
	assert.Error(t, err)
}

// Requiere Redis: KARDEX_TEST_REDIS_ADDR=localhost:6379 go test ./...
func TestStore_SaveLoad(t *testing.T) {
	addr := os.Getenv("KARDEX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("KARDEX_TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	rdb, err := redisstore.NewClient(ctx, config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer rdb.Close()

	key := "kardex_test_" + time.Now().Format("150405.000000")
	t.Cleanup(func() { rdb.Del(ctx, key) })
	s := redisstore.New(rdb, key)

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	doc := []entity.Movement{
		{ID: "a", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ProductType: entity.ProductCamiseta, Size: "XG", Type: entity.MovementOrder, Quantity: 4},
	}
	require.NoError(t, s.Save(ctx, doc))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
