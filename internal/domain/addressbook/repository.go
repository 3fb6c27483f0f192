package addressbook

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository persists whole address-book snapshots.
type Repository interface {
	// Load returns the stored address book.
	// Returns an error matching shared.ErrSnapshotNotFound when nothing is stored yet,
	// and shared.ErrIllegalValue when the stored data violates a constraint.
	Load(ctx context.Context) (*AddressBook, error)

	// Save replaces the stored snapshot with ab.
	Save(ctx context.Context, ab ReadOnly) error
}
