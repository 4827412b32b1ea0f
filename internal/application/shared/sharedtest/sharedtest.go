// Package sharedtest 应用服务测试用的缓存与事件替身
package sharedtest

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

// MemoryCache 内存缓存，值按JSON保存以模拟Redis的序列化行为
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	Hits    int
	Misses  int
	// Deleted 每次DeletePrefix的前缀
	Deleted []string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string][]byte{}}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key]
	if !ok {
		c.Misses++
		return false, nil
	}
	c.Hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *MemoryCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deleted = append(c.Deleted, prefix)
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

// Has 是否存在key
func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Publisher 记录发布过的事件，Err非空时发布失败
type Publisher struct {
	mu     sync.Mutex
	Events []catalog.Event
	Err    error
}

func (p *Publisher) Publish(ctx context.Context, event catalog.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}

// Types 已发布事件的类型序列
func (p *Publisher) Types() []catalog.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]catalog.EventType, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.Type
	}
	return out
}
