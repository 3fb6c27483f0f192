// Package persistence picks and opens the address book store named by
// configuration.
package persistence

import (
	"context"
	"fmt"

	"github.com/tutorscontactpro/contacts/config"
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/jsonfile"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/postgres"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/redis"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Store is an opened repository plus the function releasing its resources.
type Store struct {
	addressbook.Repository
	Backend string
	close   func()
}

// Close releases connections held by the store. Safe to call on file stores.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to backend using cfg. PostgreSQL stores are migrated first.
// Remote stores sit behind a circuit breaker.
func Open(ctx context.Context, backend string, cfg *config.Config, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Backend(backend))

	switch backend {
	case config.BackendJSON:
		file := jsonfile.NewStore(cfg.Storage.FilePath, log)
		log.Info("using data file", logger.String("path", file.Path()))
		return &Store{Repository: file, Backend: backend}, nil

	case config.BackendPostgres:
		conn, err := postgres.NewConnection(ctx, PostgresConfig(cfg), nil, log)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return &Store{
			Repository: guard(postgres.NewAddressBookRepository(conn), "postgres", log),
			Backend:    backend,
			close:      conn.Close,
		}, nil

	case config.BackendRedis:
		cache, err := redis.NewCache(ctx, RedisConfig(cfg), nil, log)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return &Store{
			Repository: guard(redis.NewAddressBookStore(cache, cfg.Redis.Key), "redis", log),
			Backend:    backend,
			close: func() {
				if err := cache.Close(); err != nil {
					log.Warn("closing redis client failed", logger.Err(err))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// PostgresConfig maps application configuration onto pool settings.
func PostgresConfig(cfg *config.Config) postgres.Config {
	pc := postgres.DefaultConfig()
	pc.URL = cfg.Database.URL
	pc.MaxConns = cfg.Database.MaxConns
	if pc.MinConns > pc.MaxConns {
		pc.MinConns = pc.MaxConns
	}
	pc.QueryTimeout = cfg.Database.QueryTimeout
	return pc
}

// RedisConfig maps application configuration onto client settings.
func RedisConfig(cfg *config.Config) redis.Config {
	rc := redis.DefaultConfig()
	rc.Host = cfg.Redis.Host
	rc.Port = cfg.Redis.Port
	rc.Password = cfg.Redis.Password
	rc.DB = cfg.Redis.DB
	return rc
}

// LoggerOptions maps observability settings onto logger options.
func LoggerOptions(cfg *config.Config) logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(cfg.Observability.LogLevel)
	opts.Format = cfg.Observability.LogFormat
	opts.File.Path = cfg.Observability.LogFile
	opts.AddCaller = !cfg.IsProduction()
	return opts
}
