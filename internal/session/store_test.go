package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh instance of every CredentialStore.
func backends(t *testing.T) map[string]CredentialStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]CredentialStore{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "state.yaml")),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Empty(t, got, "unknown session has no credential")

			require.NoError(t, store.Set(ctx, "s1", "  key-one  "))
			require.NoError(t, store.Set(ctx, "s2", "key-two"))

			got, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "key-one", got)

			require.NoError(t, store.Set(ctx, "s1", "key-one-b"))
			got, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "key-one-b", got)

			require.NoError(t, store.Clear(ctx, "s1"))
			got, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Empty(t, got)

			got, err = store.Get(ctx, "s2")
			require.NoError(t, err)
			assert.Equal(t, "key-two", got, "sessions are independent")

			assert.NoError(t, store.Clear(ctx, "never-set"))
		})
	}
}

func TestStoreBlankKeyClears(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "s", "key"))
			require.NoError(t, store.Set(ctx, "s", "   "))

			got, err := store.Get(ctx, "s")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestStoreRejectsBlankID(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Get(ctx, " ")
			assert.ErrorIs(t, err, ErrInvalidID)
			assert.ErrorIs(t, store.Set(ctx, "", "k"), ErrInvalidID)
			assert.ErrorIs(t, store.Clear(ctx, ""), ErrInvalidID)
		})
	}
}

func TestRedisStoreLayout(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	store := NewRedisStore(rdb)

	require.NoError(t, store.Set(context.Background(), "abc", "secret"))
	v, err := mr.Get("session:abc:credential")
	require.NoError(t, err)
	assert.Equal(t, "secret", v)
	assert.Zero(t, mr.TTL("session:abc:credential"), "credentials do not expire")

	require.NoError(t, store.Clear(context.Background(), "abc"))
	assert.False(t, mr.Exists("session:abc:credential"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	mr.Close()

	_, err := NewRedisStore(rdb).Get(context.Background(), "abc")
	assert.Error(t, err)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	ctx := context.Background()

	require.NoError(t, NewFileStore(path).Set(ctx, LocalSessionID, "persisted"))

	got, err := NewFileStore(path).Get(ctx, LocalSessionID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte("credentials: [not, a, map"), 0o600))

	_, err := NewFileStore(path).Get(context.Background(), LocalSessionID)
	assert.Error(t, err)
}

func TestMemoryStoreConcurrentUse(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "shared", "k")
			_, _ = store.Get(ctx, "shared")
			_ = store.Clear(ctx, "shared")
		}()
	}
	wg.Wait()
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "****", Mask("abcd"))
	assert.Equal(t, "*****6789", Mask("123456789"))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
