package contribdb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/contribdash/internal/app"
)

// CachedStore wraps a ContributorStore with a caching layer.
// Repositories are not cached: the service reads them once at startup.
type CachedStore struct {
	store              app.ContributorStore
	contributionsCache *lru.Cache
	usersCache         *lru.Cache
	ttl                time.Duration
}

var _ app.ContributorStore = &CachedStore{}

// NewCachedStore creates new CachedStore instance.
func NewCachedStore(store app.ContributorStore, size int, ttl time.Duration) (*CachedStore, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	contributionsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for contributions: %w", err)
	}
	usersCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for users: %w", err)
	}

	return &CachedStore{
		store:              store,
		contributionsCache: contributionsCache,
		usersCache:         usersCache,
		ttl:                ttl,
	}, nil
}

// Repositories returns all repositories. Passes the call through.
func (c *CachedStore) Repositories(ctx context.Context) ([]app.Repository, error) {
	return c.store.Repositories(ctx)
}

// ContributionsByRepository returns the repository's contribution rows, cached.
func (c *CachedStore) ContributionsByRepository(ctx context.Context, repositoryID int64) ([]app.Contribution, error) {
	key := repositoryID
	val, ok := c.contributionsCache.Get(key)
	if ok {
		entry := val.(contributionsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	contributions, err := c.store.ContributionsByRepository(ctx, repositoryID)
	if err != nil {
		return contributions, err
	}

	c.contributionsCache.Add(key, contributionsCacheEntry{
		created: time.Now(),
		data:    contributions,
	})

	return contributions, nil
}

// UsersByIDs returns user rows for given id set, cached.
func (c *CachedStore) UsersByIDs(ctx context.Context, ids []int64) ([]app.User, error) {
	key := c.usersCacheKey(ids)
	val, ok := c.usersCache.Get(key)
	if ok {
		entry := val.(usersCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	users, err := c.store.UsersByIDs(ctx, ids)
	if err != nil {
		return users, err
	}

	c.usersCache.Add(key, usersCacheEntry{
		created: time.Now(),
		data:    users,
	})

	return users, nil
}

func (c *CachedStore) usersCacheKey(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

type contributionsCacheEntry struct {
	created time.Time
	data    []app.Contribution
}

type usersCacheEntry struct {
	created time.Time
	data    []app.User
}
