package settings

import (
	"container/list"
	"sync"
	"time"
)

type cacheEntry struct {
	userID    int64
	settings  UserSettings
	expiresAt time.Time
}

// Cache is a bounded LRU of user settings. Entries also expire after ttl when ttl > 0.
type Cache struct {
	mu       sync.Mutex
	maxItems int
	ttl      time.Duration
	order    *list.List
	items    map[int64]*list.Element
	now      func() time.Time
}

func NewCache(maxItems int, ttl time.Duration) *Cache {
	if maxItems < 1 {
		maxItems = 1
	}
	return &Cache{
		maxItems: maxItems,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[int64]*list.Element),
		now:      time.Now,
	}
}

func (c *Cache) Get(userID int64) (UserSettings, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[userID]
	if !ok {
		return UserSettings{}, false
	}
	entry := elem.Value.(*cacheEntry)
	if c.ttl > 0 && !c.now().Before(entry.expiresAt) {
		c.removeElement(elem)
		return UserSettings{}, false
	}
	c.order.MoveToFront(elem)
	return entry.settings, true
}

func (c *Cache) Set(userID int64, s UserSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if elem, ok := c.items[userID]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.settings = s
		entry.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	c.items[userID] = c.order.PushFront(&cacheEntry{userID: userID, settings: s, expiresAt: expiresAt})
	for c.order.Len() > c.maxItems {
		c.removeElement(c.order.Back())
	}
}

func (c *Cache) Invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[userID]; ok {
		c.removeElement(elem)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*cacheEntry).userID)
}
