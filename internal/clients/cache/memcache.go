package cache

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

const (
	keyPrefix = "expense-tracker:"
	// a day is enough for summaries; invalidation handles the rest
	ttlSeconds int32 = 24 * 60 * 60
)

//go:generate minimock -i memcacheClient -o ./mock/memcache_client_mock.go -n MemcacheClientMock

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

type MemcacheClient struct {
	client memcacheClient
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping memcached")
	}
	return newMemcacheClient(mc), nil
}

func newMemcacheClient(client memcacheClient) *MemcacheClient {
	return &MemcacheClient{client}
}

func formatKey(key string) string {
	return keyPrefix + key
}

func (mc *MemcacheClient) CacheSummary(key string, data []byte) error {
	logger.Debug("cache summary", zap.String("key", key))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(key),
		Value:      data,
		Expiration: ttlSeconds,
	})
}

// GetSummary returns memcache.ErrCacheMiss when nothing is cached under key.
func (mc *MemcacheClient) GetSummary(key string) ([]byte, error) {
	logger.Debug("get summary from cache", zap.String("key", key))
	item, err := mc.client.Get(formatKey(key))
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateSummaries(keys []string) error {
	logger.Info("invalidate cache", zap.Strings("keys", keys))

	for _, key := range keys {
		err := mc.client.Delete(formatKey(key))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
