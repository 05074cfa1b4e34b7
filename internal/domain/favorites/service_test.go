// internal/domain/favorites/service_test.go
package favorites

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store that mimics the Redis wrapper,
// including returning redis.Nil for missing keys.
type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value.(string)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestService_Toggle(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testLogger())
	ctx := context.Background()

	favorited := svc.Toggle(ctx, "user-1", 3)
	assert.True(t, favorited)
	assert.True(t, svc.IsFavorite(ctx, "user-1", 3))

	// Toggling again removes the product.
	favorited = svc.Toggle(ctx, "user-1", 3)
	assert.False(t, favorited)
	assert.False(t, svc.IsFavorite(ctx, "user-1", 3))
	assert.Empty(t, svc.List(ctx, "user-1"))
}

func TestService_TogglePersistsEveryMutation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testLogger())
	ctx := context.Background()

	svc.Toggle(ctx, "user-1", 1)
	svc.Toggle(ctx, "user-1", 2)
	assert.JSONEq(t, "[1,2]", store.data["favorites:user-1"])

	svc.Toggle(ctx, "user-1", 1)
	assert.JSONEq(t, "[2]", store.data["favorites:user-1"])
}

func TestService_ListKeepsInsertionOrder(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testLogger())
	ctx := context.Background()

	svc.Toggle(ctx, "user-1", 5)
	svc.Toggle(ctx, "user-1", 2)
	svc.Toggle(ctx, "user-1", 9)

	assert.Equal(t, []uint{5, 2, 9}, svc.List(ctx, "user-1"))
}

func TestService_UsersAreIsolated(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testLogger())
	ctx := context.Background()

	svc.Toggle(ctx, "user-1", 1)
	svc.Toggle(ctx, "user-2", 2)

	assert.Equal(t, []uint{1}, svc.List(ctx, "user-1"))
	assert.Equal(t, []uint{2}, svc.List(ctx, "user-2"))
}

func TestService_MissingKeyIsEmptySet(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testLogger())
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx, "nobody"))
	assert.False(t, svc.IsFavorite(ctx, "nobody", 1))
}

func TestService_CorruptPayloadDegradesToEmptySet(t *testing.T) {
	store := newFakeStore()
	store.data["favorites:user-1"] = "{not json"
	svc := NewService(store, testLogger())
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx, "user-1"))

	// The next toggle starts over from the empty set.
	favorited := svc.Toggle(ctx, "user-1", 7)
	assert.True(t, favorited)
	assert.Equal(t, []uint{7}, svc.List(ctx, "user-1"))
}

func TestService_StoreFailuresAreSwallowed(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	svc := NewService(store, testLogger())
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx, "user-1"))

	store.getErr = nil
	store.setErr = errors.New("connection refused")

	// Toggle still reports the in-memory result even when the write fails.
	favorited := svc.Toggle(ctx, "user-1", 1)
	assert.True(t, favorited)
	require.Empty(t, store.data)
}
