package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/albapepper/scorepulse/internal/provider"
)

// FreshWindow is how long a written player profile counts as fresh. Past
// the window the entry is still served — stale — while the caller refreshes
// it in the background.
const FreshWindow = time.Hour

type playerEntry struct {
	player   *provider.Player
	storedAt time.Time
}

// PlayerCache is the stale-while-revalidate tier for assembled player
// profiles, keyed by (sport, player id). Unlike the response cache it
// exposes staleness to the caller instead of hiding it: a stale hit is
// served immediately and re-fetched in the background, so only the very
// first request for a player ever waits on the full fan-out.
type PlayerCache struct {
	mu      sync.RWMutex
	entries map[string]playerEntry
	now     func() time.Time
}

// NewPlayerCache creates a player cache using wall-clock time.
func NewPlayerCache() *PlayerCache {
	return NewPlayerCacheWithClock(time.Now)
}

// NewPlayerCacheWithClock creates a player cache with an injected clock.
func NewPlayerCacheWithClock(now func() time.Time) *PlayerCache {
	return &PlayerCache{
		entries: make(map[string]playerEntry),
		now:     now,
	}
}

func playerKey(sport, id string) string {
	return fmt.Sprintf("%s:%s", sport, id)
}

// Get returns the cached player and whether it is still within the fresh
// window. A stale entry is returned with fresh=false, never evicted.
func (pc *PlayerCache) Get(sport, id string) (player *provider.Player, fresh, ok bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	e, exists := pc.entries[playerKey(sport, id)]
	if !exists {
		return nil, false, false
	}
	return e.player, pc.now().Sub(e.storedAt) <= FreshWindow, true
}

// Put unconditionally overwrites the entry and resets its freshness timer.
func (pc *PlayerCache) Put(sport, id string, player *provider.Player) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries[playerKey(sport, id)] = playerEntry{
		player:   player,
		storedAt: pc.now(),
	}
}
