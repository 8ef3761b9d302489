package cache

import (
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/logger"

	"github.com/bradfitz/gomemcache/memcache"
)

const summaryPrefix = "summary:"

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) CacheSummary(datasetID string, payload []byte) error {
	logger.Info("cache summary", zap.String("dataset", datasetID))
	return mc.client.Set(&memcache.Item{
		Key:   summaryPrefix + datasetID,
		Value: payload,
	})
}

func (mc *MemcacheClient) GetSummary(datasetID string) ([]byte, error) {
	item, err := mc.client.Get(summaryPrefix + datasetID)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}
