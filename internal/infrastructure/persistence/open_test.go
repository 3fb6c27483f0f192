package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/config"
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/testutil"
	"github.com/tutorscontactpro/contacts/pkg/circuitbreaker"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

func TestOpen_JSONRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.FilePath = filepath.Join(t.TempDir(), "book.json")
	ctx := context.Background()

	store, err := Open(ctx, config.BackendJSON, cfg, nil)
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, config.BackendJSON, store.Backend)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, shared.ErrSnapshotNotFound)

	require.NoError(t, store.Save(ctx, testutil.TypicalAddressBook()))
	book, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, book.Persons(), len(testutil.TypicalPersons()))
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "sqlite", config.Default(), nil)
	assert.ErrorContains(t, err, `unknown storage backend "sqlite"`)
}

func TestMigrations_RejectsBeforeConnecting(t *testing.T) {
	cfg := config.Default()
	cfg.Database.URL = "postgres://localhost:1/contacts"

	_, err := Migrations(context.Background(), cfg, "redo", nil)
	assert.ErrorContains(t, err, `unknown migrations action "redo"`)

	cfg.Database.URL = ""
	_, err = Migrations(context.Background(), cfg, MigrationsStatus, nil)
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}

func TestPostgresConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Database.URL = "postgres://localhost/contacts"
	cfg.Database.MaxConns = 10
	cfg.Database.QueryTimeout = 2 * time.Second

	pc := PostgresConfig(cfg)
	assert.Equal(t, "postgres://localhost/contacts", pc.URL)
	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, 2*time.Second, pc.QueryTimeout)
	assert.LessOrEqual(t, pc.MinConns, pc.MaxConns)
}

func TestRedisConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Host = "cache"
	cfg.Redis.DB = 3

	rc := RedisConfig(cfg)
	assert.Equal(t, "cache:6379", rc.Addr())
	assert.Equal(t, 3, rc.DB)
}

func TestLoggerOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Observability.LogLevel = "warn"
	cfg.Observability.LogFormat = "console"
	cfg.App.Environment = config.EnvProduction

	opts := LoggerOptions(cfg)
	assert.Equal(t, logger.LevelWarn, opts.Level)
	assert.Equal(t, "console", opts.Format)
	assert.False(t, opts.AddCaller)
}

type flakyRepo struct {
	err   error
	calls int
}

func (f *flakyRepo) Load(context.Context) (*addressbook.AddressBook, error) {
	f.calls++
	return nil, f.err
}

func (f *flakyRepo) Save(context.Context, addressbook.ReadOnly) error {
	f.calls++
	return f.err
}

func TestGuard_OpensOnOutage(t *testing.T) {
	repo := &flakyRepo{err: errors.New("connection refused")}
	g := guard(repo, "postgres", logger.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Error(t, g.Save(ctx, testutil.TypicalAddressBook()))
	}
	err := g.Save(ctx, testutil.TypicalAddressBook())
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 3, repo.calls)
}

func TestGuard_MissingSnapshotIsNotAnOutage(t *testing.T) {
	repo := &flakyRepo{err: shared.WrapError("redis", "Load", shared.ErrSnapshotNotFound, "nothing stored", nil)}
	g := guard(repo, "redis", logger.Nop())

	for i := 0; i < 5; i++ {
		_, err := g.Load(context.Background())
		assert.ErrorIs(t, err, shared.ErrSnapshotNotFound)
	}
	assert.Equal(t, 5, repo.calls)
}
