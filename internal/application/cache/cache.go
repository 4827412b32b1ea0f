// Package cache 读接口的缓存约定
//
// 缓存只覆盖公开的读接口（分类列表、商品列表、商品详情），按语言区分。
// 写操作成功后按前缀失效，失效失败只记日志：读接口允许短暂读到旧数据，
// 但不能因为缓存故障而失败。
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

// Cache 缓存接口，由infrastructure/persistence/redis实现
type Cache interface {
	// Get 读取并反序列化到dest，未命中返回false
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set 序列化写入
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// DeletePrefix 删除所有以prefix开头的key
	DeletePrefix(ctx context.Context, prefix string) error
}

// Nop 不缓存（未启用Redis时使用）
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (Nop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Nop) DeletePrefix(context.Context, string) error                    { return nil }

// TTL 各类缓存的过期时间
type TTL struct {
	List   time.Duration
	Detail time.Duration
}

// key布局（实现会再加上全局前缀）:
//
//	categories:{lang}
//	items:{categoryID}:{lang}
//	item:{itemID}:{lang}

// CategoryListKey 分类列表
func CategoryListKey(lang catalog.Language) string {
	return fmt.Sprintf("categories:%s", lang)
}

// CategoryListPrefix 全部语言的分类列表
func CategoryListPrefix() string {
	return "categories:"
}

// ItemListKey 分类下的商品列表
func ItemListKey(categoryID string, lang catalog.Language) string {
	return fmt.Sprintf("items:%s:%s", categoryID, lang)
}

// ItemListPrefix 分类下全部语言的商品列表
func ItemListPrefix(categoryID string) string {
	return fmt.Sprintf("items:%s:", categoryID)
}

// ItemDetailKey 商品详情
func ItemDetailKey(itemID string, lang catalog.Language) string {
	return fmt.Sprintf("item:%s:%s", itemID, lang)
}

// ItemDetailPrefix 商品全部语言的详情
func ItemDetailPrefix(itemID string) string {
	return fmt.Sprintf("item:%s:", itemID)
}

// AllItemDetailsPrefix 全部商品详情（属性变更会影响多个商品的展示）
func AllItemDetailsPrefix() string {
	return "item:"
}

// AllItemListsPrefix 全部分类的商品列表
func AllItemListsPrefix() string {
	return "items:"
}
