package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/core/database"
	"go-user-api-starter/internal/domain"
	"go-user-api-starter/internal/repo"
)

// fakeCache implements Cache in memory and records what the service
// loads and invalidates.
type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	loads       int
	invalidated []string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (f *fakeCache) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	f.mu.Lock()
	b, ok := f.data[key]
	f.mu.Unlock()
	if ok {
		return b, nil
	}
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.loads++
	f.data[key] = b
	f.mu.Unlock()
	return b, nil
}

func (f *fakeCache) Invalidate(_ context.Context, keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
		f.invalidated = append(f.invalidated, k)
	}
}

func newCachedService(t *testing.T) (*UserService, *fakeCache) {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	jwter := &auth.JWTer{
		Secret: []byte("test-secret-at-least-16-chars"),
		Issuer: "user-api-test",
		TTL:    24 * time.Hour,
	}
	fc := newFakeCache()
	return NewUserService(repo.NewUserRepo(db), auth.SHA256Hasher{}, jwter, fc), fc
}

func TestGetByID_ServedFromCacheAfterFirstLoad(t *testing.T) {
	s, fc := newCachedService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice@example.com", strptr("Alice"), "pw")
	require.NoError(t, err)

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, 1, fc.loads)

	// Delete straight through the repository, bypassing the service's
	// invalidation: the cached projection must still be served.
	require.NoError(t, s.repo.Delete(ctx, u.ID))

	got, err = s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, 1, fc.loads)
}

func TestGetByID_MissIsNotCached(t *testing.T) {
	s, fc := newCachedService(t)

	_, err := s.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, 0, fc.loads)
	assert.Empty(t, fc.data)
}

func TestUpdate_InvalidatesOldAndNewEmailKeys(t *testing.T) {
	s, fc := newCachedService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice@example.com", strptr("Alice"), "pw")
	require.NoError(t, err)

	// Warm both keys.
	_, err = s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	_, err = s.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, fc.loads)

	_, err = s.Update(ctx, u.ID, domain.UserPatch{Email: strptr("alice2@example.com")})
	require.NoError(t, err)

	assert.Contains(t, fc.invalidated, idKey(u.ID))
	assert.Contains(t, fc.invalidated, emailKey("alice@example.com"))
	assert.Contains(t, fc.invalidated, emailKey("alice2@example.com"))

	// Old address no longer resolves, new one does — freshly loaded.
	_, err = s.GetByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	got, err := s.GetByEmail(ctx, "alice2@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice2@example.com", got.Email)
}

func TestRemove_InvalidatesKeys(t *testing.T) {
	s, fc := newCachedService(t)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice@example.com", nil, "pw")
	require.NoError(t, err)
	_, err = s.GetByID(ctx, u.ID)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, u.ID))

	assert.Contains(t, fc.invalidated, idKey(u.ID))
	assert.Contains(t, fc.invalidated, emailKey("alice@example.com"))

	_, err = s.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
