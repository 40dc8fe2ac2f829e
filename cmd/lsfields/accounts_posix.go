//go:build !windows

package main

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/mutagen-io/lsfields/pkg/identity"
	"github.com/mutagen-io/lsfields/pkg/render"
)

// accountDatabase is the subset of render.AccountDatabase that's cached.
type accountDatabase interface {
	UserName(uid uint32) (string, bool, error)
	GroupName(gid uint32) (string, bool, error)
}

// cachedName is a cached lookup result.
type cachedName struct {
	// name is the resolved name.
	name string
	// ok indicates whether or not the identifier was known.
	ok bool
}

// cachedAccounts is a render.AccountDatabase that caches name lookups and the
// viewing user's identity. It is safe for concurrent use.
type cachedAccounts struct {
	// database is the underlying account database.
	database accountDatabase
	// lock serializes access to the caches.
	lock sync.Mutex
	// users caches user names by ID.
	users *lru.Cache
	// groups caches group names by ID.
	groups *lru.Cache
	// currentUID is the viewing user's ID.
	currentUID uint32
	// currentGIDs are the viewing user's group IDs.
	currentGIDs []uint32
}

// newAccountDatabase creates the account database used for rendering. If size
// is 0, lookups aren't cached.
func newAccountDatabase(size int) render.AccountDatabase {
	system := identity.SystemAccounts{}
	if size == 0 {
		return system
	}
	return newCachedAccounts(system, size, system.CurrentUID(), system.CurrentGIDs())
}

// newCachedAccounts creates a cache with the specified capacity in front of an
// account database.
func newCachedAccounts(database accountDatabase, size int, uid uint32, gids []uint32) *cachedAccounts {
	return &cachedAccounts{
		database:    database,
		users:       lru.New(size),
		groups:      lru.New(size),
		currentUID:  uid,
		currentGIDs: gids,
	}
}

// lookup resolves an identifier through a cache. Failed lookups aren't cached.
func (a *cachedAccounts) lookup(cache *lru.Cache, id uint32, resolve func(uint32) (string, bool, error)) (string, bool, error) {
	// Check the cache.
	a.lock.Lock()
	cached, ok := cache.Get(id)
	a.lock.Unlock()
	if ok {
		result := cached.(cachedName)
		return result.name, result.ok, nil
	}

	// Perform the lookup without holding the lock. Concurrent misses for the
	// same identifier may both perform a lookup, which is harmless.
	name, known, err := resolve(id)
	if err != nil {
		return "", false, err
	}

	// Cache the result.
	a.lock.Lock()
	cache.Add(id, cachedName{name: name, ok: known})
	a.lock.Unlock()

	// Done.
	return name, known, nil
}

// UserName implements render.AccountDatabase.UserName.
func (a *cachedAccounts) UserName(uid uint32) (string, bool, error) {
	return a.lookup(a.users, uid, a.database.UserName)
}

// GroupName implements render.AccountDatabase.GroupName.
func (a *cachedAccounts) GroupName(gid uint32) (string, bool, error) {
	return a.lookup(a.groups, gid, a.database.GroupName)
}

// CurrentUID implements render.AccountDatabase.CurrentUID.
func (a *cachedAccounts) CurrentUID() uint32 {
	return a.currentUID
}

// CurrentGIDs implements render.AccountDatabase.CurrentGIDs.
func (a *cachedAccounts) CurrentGIDs() []uint32 {
	return a.currentGIDs
}
