// internal/domain/favorites/service.go
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// favoritesKeyPrefix is the fixed key under which a user's favorites blob
// is stored.
const favoritesKeyPrefix = "favorites"

// Store is the external key-value blob store the favorites set round-trips
// through. Implemented by the Redis connection wrapper in production and by
// an in-memory map in tests.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Service owns the persisted favorites set of each user. The set is
// serialized as an ordered JSON array of product identifiers; membership,
// not order, is the semantic. Persistence failures degrade to an empty or
// unsaved set and are logged, never surfaced as a failure to the caller.
type Service struct {
	store Store
	log   *logrus.Logger
}

// NewService creates a new favorites service.
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Toggle flips membership of a product in the user's favorites and persists
// the result. It returns whether the product is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, userID string, productID uint) bool {
	ids := s.load(ctx, userID)

	found := false
	next := make([]uint, 0, len(ids)+1)
	for _, id := range ids {
		if id == productID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, productID)
	}

	s.save(ctx, userID, next)
	return !found
}

// IsFavorite reports whether the product is in the user's favorites.
func (s *Service) IsFavorite(ctx context.Context, userID string, productID uint) bool {
	for _, id := range s.load(ctx, userID) {
		if id == productID {
			return true
		}
	}
	return false
}

// List returns the user's favorite product identifiers in the order they
// were added.
func (s *Service) List(ctx context.Context, userID string) []uint {
	return s.load(ctx, userID)
}

// load reads the stored blob. A missing key or corrupt payload yields the
// empty set; the caller must never crash because persistence misbehaved.
func (s *Service) load(ctx context.Context, userID string) []uint {
	data, err := s.store.Get(ctx, s.key(userID))
	if errors.Is(err, redis.Nil) {
		// No favorites stored yet.
		return nil
	}
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).
			Warn("Failed to load favorites, defaulting to empty set")
		return nil
	}

	var ids []uint
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		s.log.WithError(err).WithField("user_id", userID).
			Warn("Corrupt favorites payload, defaulting to empty set")
		return nil
	}
	return ids
}

// save persists the set after every mutation. Favorites have no expiry;
// they survive app restarts.
func (s *Service) save(ctx context.Context, userID string, ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("Failed to serialize favorites")
		return
	}

	if err := s.store.Set(ctx, s.key(userID), string(data), 0); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("Failed to persist favorites")
	}
}

func (s *Service) key(userID string) string {
	return fmt.Sprintf("%s:%s", favoritesKeyPrefix, userID)
}
