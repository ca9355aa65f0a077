package cache

import (
	"fmt"
	"os"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/modfence/modfence/core/logger"
)

type fileState struct {
	size    int64
	modTime int64
}

// FileCache remembers the last observed (size, mtime) of processed files so
// watch-mode re-runs can skip files that have not changed since the previous
// pass. Purely an optimization: a cold cache only costs re-scanning.
type FileCache struct {
	states *lru.Cache[string, fileState]

	mu     sync.Mutex
	hits   int64
	misses int64
}

func New(maxEntries int) (*FileCache, error) {
	states, err := lru.New[string, fileState](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cache: %w", err)
	}
	logger.Debug("Created file cache with max %d entries", maxEntries)
	return &FileCache{states: states}, nil
}

// Unchanged reports whether path still matches its recorded state.
func (fc *FileCache) Unchanged(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		fc.miss()
		return false
	}

	prev, ok := fc.states.Get(path)
	if !ok || prev.size != info.Size() || prev.modTime != info.ModTime().UnixNano() {
		fc.miss()
		return false
	}
	fc.hit()
	return true
}

// Remember records the current state of path after it has been processed.
func (fc *FileCache) Remember(path string) {
	info, err := os.Stat(path)
	if err != nil {
		logger.Debug("Cannot record state for %s: %v", path, err)
		return
	}
	fc.states.Add(path, fileState{size: info.Size(), modTime: info.ModTime().UnixNano()})
}

// Invalidate drops the recorded state for path.
func (fc *FileCache) Invalidate(path string) {
	fc.states.Remove(path)
}

func (fc *FileCache) Clear() {
	fc.states.Purge()
	logger.Debug("Cleared file cache")
}

func (fc *FileCache) LogStats() {
	fc.mu.Lock()
	hits, misses := fc.hits, fc.misses
	fc.mu.Unlock()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Entries=%d", hits, misses, fc.states.Len())
}

func (fc *FileCache) hit() {
	fc.mu.Lock()
	fc.hits++
	fc.mu.Unlock()
}

func (fc *FileCache) miss() {
	fc.mu.Lock()
	fc.misses++
	fc.mu.Unlock()
}
