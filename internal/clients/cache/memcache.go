package cache

import (
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/fintrack/internal/logger"
)

const (
	keyBase      = 10
	dashboardKey = "dashboard"

	// Entries go stale silently if an invalidation is lost; cap their life.
	dashboardTTLSeconds = 300
)

type config interface {
	Hosts() []string
}

type MemcacheClient struct {
	client *memcache.Client
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(userID int64, option string) string {
	return strconv.FormatInt(userID, keyBase) + ":" + option
}

func (mc *MemcacheClient) CacheDashboard(userID int64, payload []byte) error {
	logger.Info("cache dashboard", zap.Int64("userID", userID))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(userID, dashboardKey),
		Value:      payload,
		Expiration: dashboardTTLSeconds,
	})
}

func (mc *MemcacheClient) GetDashboard(userID int64) ([]byte, error) {
	item, err := mc.client.Get(formatKey(userID, dashboardKey))
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateDashboard(userID int64) error {
	logger.Info("invalidate dashboard", zap.Int64("userID", userID))
	err := mc.client.Delete(formatKey(userID, dashboardKey))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
