package namespace

import (
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// DefaultCacheSize is the number of names a Cache keeps by default.
const DefaultCacheSize = 1024

// Cache memoizes name to path derivations. It's safe for concurrent use.
type Cache struct {
	log   *zap.Logger
	paths *lru.Cache
}

// NewCache creates a Cache holding up to size names, non-positive sizes
// mean DefaultCacheSize. A nil logger disables logging.
func NewCache(size int, log *zap.Logger) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	c, _ := lru.New(size) // Never errors for positive size.
	return &Cache{log: log, paths: c}
}

// Resolve returns the full path of the name, deriving it on cache miss.
// Invalid names are not cached.
func (c *Cache) Resolve(name string) ([]ID, error) {
	if v, ok := c.paths.Get(name); ok {
		return append([]ID(nil), v.([]ID)...), nil
	}
	path, err := FullPath(name)
	if err != nil {
		return nil, err
	}
	if c.paths.Add(name, path) {
		c.log.Debug("namespace cache eviction", zap.Int("size", c.paths.Len()))
	}
	c.log.Debug("namespace path derived",
		zap.String("name", name),
		zap.Stringer("id", path[len(path)-1]))
	return append([]ID(nil), path...), nil
}

// ID returns the id of the name, deriving it on cache miss.
func (c *Cache) ID(name string) (ID, error) {
	path, err := c.Resolve(name)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

// Len returns the number of cached names.
func (c *Cache) Len() int {
	return c.paths.Len()
}
