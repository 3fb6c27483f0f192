package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/snapshot"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// DefaultKey is where the snapshot is stored when no key is configured.
const DefaultKey = "tutorscontactpro:addressbook"

// AddressBookStore implements addressbook.Repository on a single Redis key.
type AddressBookStore struct {
	cache *Cache
	key   string
}

// NewAddressBookStore returns a store writing to key, or DefaultKey when key is empty.
func NewAddressBookStore(cache *Cache, key string) *AddressBookStore {
	if key == "" {
		key = DefaultKey
	}
	return &AddressBookStore{cache: cache, key: key}
}

var _ addressbook.Repository = (*AddressBookStore)(nil)

// Key returns the Redis key holding the snapshot.
func (s *AddressBookStore) Key() string {
	return s.key
}

// Load fetches and decodes the snapshot.
func (s *AddressBookStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	data, err := s.cache.GetBytes(ctx, s.key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, shared.WrapError("redis", "Load", shared.ErrSnapshotNotFound,
			fmt.Sprintf("No address book stored under %s", s.key), err)
	}
	if err != nil {
		return nil, fmt.Errorf("redis: load %s: %w", s.key, err)
	}

	ab, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}
	s.cache.log.Debug("address book loaded", logger.String("key", s.key), logger.Count("persons", len(ab.Persons())))
	return ab, nil
}

// Save encodes ab and overwrites the key.
func (s *AddressBookStore) Save(ctx context.Context, ab addressbook.ReadOnly) error {
	data, err := snapshot.Encode(ab)
	if err != nil {
		return err
	}
	if err := s.cache.SetBytes(ctx, s.key, data, 0); err != nil {
		return fmt.Errorf("redis: save %s: %w", s.key, err)
	}
	s.cache.log.Debug("address book saved", logger.String("key", s.key), logger.Count("bytes", len(data)))
	return nil
}
