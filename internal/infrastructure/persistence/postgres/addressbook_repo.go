package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/snapshot"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADDRESS BOOK REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// AddressBookRepository implements addressbook.Repository for PostgreSQL.
type AddressBookRepository struct {
	conn *Connection
}

// NewAddressBookRepository creates a new AddressBookRepository.
func NewAddressBookRepository(conn *Connection) *AddressBookRepository {
	return &AddressBookRepository{conn: conn}
}

var _ addressbook.Repository = (*AddressBookRepository)(nil)

// Load reads both tables inside one read-only transaction.
func (r *AddressBookRepository) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	var doc snapshot.Document
	err := r.conn.WithTx(ctx, SnapshotTxOptions(), func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM address_book_meta)`).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return shared.NewDomainError("postgres", "Load", shared.ErrSnapshotNotFound,
				"No address book has been saved to the database yet")
		}

		persons, err := loadPersons(ctx, tx)
		if err != nil {
			return err
		}
		groups, err := loadGroups(ctx, tx)
		if err != nil {
			return err
		}
		doc.Persons, doc.Groups = persons, groups
		return nil
	})
	if err != nil {
		if IsUndefinedTable(err) {
			return nil, shared.WrapError("postgres", "Load", shared.ErrSnapshotNotFound,
				"Address book tables do not exist; run migrations first", err)
		}
		if errors.Is(err, shared.ErrSnapshotNotFound) || errors.Is(err, shared.ErrIllegalValue) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	ab, err := doc.ToAddressBook()
	if err != nil {
		return nil, err
	}
	r.conn.log.Debug("address book loaded",
		logger.Count("persons", len(doc.Persons)), logger.Count("groups", len(doc.Groups)))
	return ab, nil
}

func loadPersons(ctx context.Context, q Querier) ([]snapshot.PersonRecord, error) {
	rows, err := q.Query(ctx, `
		SELECT name, phone, email, year, major, telegram, remark, groups
		FROM persons
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var out []snapshot.PersonRecord
	for rows.Next() {
		var rec snapshot.PersonRecord
		var groupsJSON []byte
		if err := rows.Scan(&rec.Name, &rec.Phone, &rec.Email, &rec.Year, &rec.Major,
			&rec.Telegram, &rec.Remark, &groupsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if err := json.Unmarshal(groupsJSON, &rec.Groups); err != nil {
			return nil, shared.WrapError("postgres", "Load", shared.ErrIllegalValue,
				snapshot.MessageMalformedPayload, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func loadGroups(ctx context.Context, q Querier) ([]snapshot.GroupRecord, error) {
	rows, err := q.Query(ctx, `
		SELECT group_name, telegram_link, attendance
		FROM tutorial_groups
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var out []snapshot.GroupRecord
	for rows.Next() {
		var rec snapshot.GroupRecord
		var attendanceJSON []byte
		if err := rows.Scan(&rec.GroupName, &rec.TelegramLink, &attendanceJSON); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		if err := json.Unmarshal(attendanceJSON, &rec.Attendance); err != nil {
			return nil, shared.WrapError("postgres", "Load", shared.ErrIllegalValue,
				snapshot.MessageMalformedPayload, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Save replaces the stored address book with ab in a single transaction.
func (r *AddressBookRepository) Save(ctx context.Context, ab addressbook.ReadOnly) error {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	doc := snapshot.FromAddressBook(ab)

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM persons`)
	batch.Queue(`DELETE FROM tutorial_groups`)
	for i, p := range doc.Persons {
		groupsJSON, err := json.Marshal(p.Groups)
		if err != nil {
			return fmt.Errorf("failed to marshal memberships: %w", err)
		}
		batch.Queue(`
			INSERT INTO persons (position, name, phone, email, year, major, telegram, remark, groups)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, i, p.Name, p.Phone, p.Email, p.Year, p.Major, p.Telegram, p.Remark, groupsJSON)
	}
	for i, g := range doc.Groups {
		attendanceJSON, err := json.Marshal(g.Attendance)
		if err != nil {
			return fmt.Errorf("failed to marshal attendance: %w", err)
		}
		batch.Queue(`
			INSERT INTO tutorial_groups (position, group_name, telegram_link, attendance)
			VALUES ($1, $2, $3, $4)
		`, i, g.GroupName, g.TelegramLink, attendanceJSON)
	}
	batch.Queue(`
		INSERT INTO address_book_meta (id, saved_at) VALUES (1, NOW())
		ON CONFLICT (id) DO UPDATE SET saved_at = EXCLUDED.saved_at
	`)

	err := r.conn.WithTx(ctx, DefaultTxOptions(), func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.WrapError("postgres", "Save", shared.ErrDuplicateEntity,
				"Address book contains duplicate entries", err)
		}
		return fmt.Errorf("failed to save address book: %w", err)
	}

	r.conn.log.Debug("address book saved",
		logger.Count("persons", len(doc.Persons)), logger.Count("groups", len(doc.Groups)))
	return nil
}
