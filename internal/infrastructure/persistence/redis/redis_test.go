package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/testutil"
)

func TestConfig_Addr(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost:6379", cfg.Addr())
}

func TestNewAddressBookStore_DefaultKey(t *testing.T) {
	assert.Equal(t, DefaultKey, NewAddressBookStore(nil, "").Key())
	assert.Equal(t, "custom", NewAddressBookStore(nil, "custom").Key())
}

func TestCache_RejectsEmptyKey(t *testing.T) {
	c := NewCacheFromClient(goredis.NewClient(&goredis.Options{Addr: "localhost:0"}), nil)
	defer c.Close()

	_, err := c.GetBytes(context.Background(), "")
	assert.ErrorIs(t, err, ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.SetBytes(context.Background(), "", nil, 0), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.SetBytes(context.Background(), "k", nil, -1), ErrCacheInvalidTTL)
}

// needs TEST_REDIS_ADDR, e.g. localhost:6379
func liveStore(t *testing.T) *AddressBookStore {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	c := NewCacheFromClient(goredis.NewClient(&goredis.Options{Addr: addr}), nil)
	t.Cleanup(func() { _ = c.Close() })

	store := NewAddressBookStore(c, "test:"+t.Name())
	require.NoError(t, c.Delete(context.Background(), store.Key()))
	return store
}

func TestAddressBookStore_LoadMissing(t *testing.T) {
	store := liveStore(t)

	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, shared.ErrSnapshotNotFound))
}

func TestAddressBookStore_RoundTrip(t *testing.T) {
	store := liveStore(t)
	ctx := context.Background()
	ab := testutil.TypicalAddressBook()

	require.NoError(t, store.Save(ctx, ab))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ab.Equal(loaded))

	exists, err := store.cache.Exists(ctx, store.Key())
	require.NoError(t, err)
	assert.True(t, exists)
}
