package srtm

import (
	"io/fs"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tileCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srtm_tile_cache_hits_total",
		Help: "The total number of hits on the tile handle cache",
	})
	tileCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srtm_tile_cache_misses_total",
		Help: "The total number of misses on the tile handle cache",
	})
	tileCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srtm_tile_cache_evictions_total",
		Help: "The total number of evictions from the tile handle cache",
	})
	tileOpens = promauto.NewCounter(prometheus.CounterOpts{
		Name: "srtm_tile_opens_total",
		Help: "The total number of tile files opened",
	})
)

// A TileSet is a directory of HGT tiles with a cache of open handles.
// Each distinct tile file is opened at most once for as long as its
// handle stays cached, including under concurrent access.
type TileSet struct {
	mutex     sync.Mutex
	fsys      fs.FS
	cacheSize int
	tileCache *lru.Cache[string, *Tile]
}

// A TileSetOption sets an option on a TileSet.
type TileSetOption func(*TileSet)

// NewTileSet returns a new TileSet with the given options.
func NewTileSet(options ...TileSetOption) (*TileSet, error) {
	s := &TileSet{
		cacheSize: 128,
	}
	for _, option := range options {
		option(s)
	}

	var err error
	s.tileCache, err = lru.NewWithEvict(s.cacheSize, func(filename string, tile *Tile) {
		_ = tile.Close()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithCacheSize(cacheSize int) TileSetOption {
	return func(s *TileSet) {
		s.cacheSize = cacheSize
	}
}

func WithFS(fsys fs.FS) TileSetOption {
	return func(s *TileSet) {
		s.fsys = fsys
	}
}

// Tile returns the open handle for filename, opening the underlying
// file on first use. Failed opens are not cached and are reported to
// every caller that races on them.
func (s *TileSet) Tile(filename string) (*Tile, error) {
	if tile, ok := s.tileCache.Get(filename); ok {
		tileCacheHits.Inc()
		return tile, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if tile, ok := s.tileCache.Get(filename); ok {
		tileCacheHits.Inc()
		return tile, nil
	}

	tileCacheMisses.Inc()

	tile, err := OpenTile(s.fsys, filename)
	if err != nil {
		return nil, err
	}
	tileOpens.Inc()

	if eviction := s.tileCache.Add(filename, tile); eviction {
		tileCacheEvictions.Inc()
	}

	return tile, nil
}

// Close closes every cached handle and empties the cache.
func (s *TileSet) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tileCache.Purge()
}
