package user

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dmercier/srplab/internal/logging"
)

// CacheStore is an in-memory Repository backed by go-cache. Entries never
// expire and no cleanup goroutine runs, so the store behaves as a plain
// process-lifetime map keyed by user ID. The store is owned by whichever
// Service it is constructed for; there are no ambient singletons.
type CacheStore struct {
	cache  *gocache.Cache
	logger logging.Logger
}

// Compile-time check that CacheStore implements Repository.
var _ Repository = (*CacheStore)(nil)

// NewCacheStore creates an empty store logging through the given logger.
func NewCacheStore(logger logging.Logger) *CacheStore {
	return &CacheStore{
		// Cleanup interval 0 keeps the store janitor-free; nothing expires.
		cache:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

// Save stores the record keyed by its ID. Saving an existing ID overwrites
// the prior record, so the operation is an idempotent upsert.
func (s *CacheStore) Save(_ context.Context, u User) (User, error) {
	s.logger.Info("saving user to in-memory store",
		logging.String("id", u.ID),
		logging.String("name", u.Name))
	s.cache.Set(u.ID, u, gocache.NoExpiration)
	return u, nil
}

// GetByID retrieves the record for the given ID. The boolean reports
// whether the record was present.
func (s *CacheStore) GetByID(_ context.Context, id string) (User, bool, error) {
	s.logger.Debug("looking up user in in-memory store", logging.String("id", id))
	value, found := s.cache.Get(id)
	if !found {
		return User{}, false, nil
	}
	u, ok := value.(User)
	if !ok {
		// Only Save writes to the cache, so the entry is always a User.
		return User{}, false, nil
	}
	return u, true, nil
}
