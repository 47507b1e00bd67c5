package gistindex

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/fathomline/geoindex/geo"
	"github.com/fathomline/geoindex/pkg/gistkey"
)

// KeyCache memoizes Compress results for circles keyed on their
// (lat, lon, radius) triple (the center as stored by geo.NewPoint, the
// radius as given, unrounded), with LRU eviction once maxEntries is
// reached. Repeated compression of the same circle value (common when a
// host re-indexes a moving object's last-known bounding circle) skips
// the key-derivation bit math entirely on a hit.
type KeyCache struct {
	maxEntries int
	entries    map[cacheKey]*list.Element
	lru        *list.List
	mu         sync.RWMutex
}

type cacheKey struct {
	lat, lon, radius float64
}

type cacheValue struct {
	key cacheKey
	ak  gistkey.AreaKey
}

// NewKeyCache creates a cache holding at most maxEntries keys. A
// maxEntries of 0 means unlimited.
func NewKeyCache(maxEntries int) *KeyCache {
	return &KeyCache{
		maxEntries: maxEntries,
		entries:    make(map[cacheKey]*list.Element),
		lru:        list.New(),
	}
}

// Compress returns the AreaKey for c, computing and caching it on a
// miss.
func (kc *KeyCache) Compress(c geo.Circle) gistkey.AreaKey {
	ck := cacheKey{lat: c.Center().Lat(), lon: c.Center().Lon(), radius: c.Radius()}

	kc.mu.RLock()
	if el, ok := kc.entries[ck]; ok {
		v := el.Value.(*cacheValue)
		kc.mu.RUnlock()
		kc.mu.Lock()
		kc.lru.MoveToFront(el)
		kc.mu.Unlock()
		return v.ak
	}
	kc.mu.RUnlock()

	ak := Compress(c)

	kc.mu.Lock()
	defer kc.mu.Unlock()
	if el, ok := kc.entries[ck]; ok {
		kc.lru.MoveToFront(el)
		return el.Value.(*cacheValue).ak
	}
	el := kc.lru.PushFront(&cacheValue{key: ck, ak: ak})
	kc.entries[ck] = el
	if kc.maxEntries > 0 {
		for len(kc.entries) > kc.maxEntries {
			back := kc.lru.Back()
			if back == nil {
				break
			}
			kc.lru.Remove(back)
			delete(kc.entries, back.Value.(*cacheValue).key)
		}
	}
	return ak
}

// Len returns the number of cached entries.
func (kc *KeyCache) Len() int {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	return len(kc.entries)
}

// Clear removes all cached entries.
func (kc *KeyCache) Clear() {
	kc.mu.Lock()
	defer kc.mu.Unlock()
	kc.entries = make(map[cacheKey]*list.Element)
	kc.lru.Init()
}

func (kc *KeyCache) String() string {
	return fmt.Sprintf("gistindex.KeyCache{len: %d, max: %d}", kc.Len(), kc.maxEntries)
}
