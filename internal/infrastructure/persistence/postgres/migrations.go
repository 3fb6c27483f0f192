package postgres

// GetMigrations returns all embedded migrations in version order.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_address_book",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "index_person_groups",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: CREATE ADDRESS BOOK
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
-- One row marks that an address book has been saved at least once.
CREATE TABLE IF NOT EXISTS address_book_meta (
    id SMALLINT PRIMARY KEY DEFAULT 1,
    saved_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    CONSTRAINT single_row CHECK (id = 1)
);

-- Persons in address-book order. Memberships carry their own attendance.
CREATE TABLE IF NOT EXISTS persons (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    year TEXT NOT NULL DEFAULT '',
    major TEXT NOT NULL DEFAULT '',
    telegram TEXT NOT NULL DEFAULT '',
    remark TEXT NOT NULL DEFAULT '',
    groups JSONB NOT NULL DEFAULT '[]'::jsonb,

    CONSTRAINT valid_position CHECK (position >= 0)
);

-- Registry of groups in address-book order.
CREATE TABLE IF NOT EXISTS tutorial_groups (
    position INTEGER PRIMARY KEY,
    group_name VARCHAR(5) NOT NULL UNIQUE,
    telegram_link TEXT NOT NULL DEFAULT '',
    attendance JSONB NOT NULL DEFAULT '[]'::jsonb,

    CONSTRAINT valid_group_name CHECK (group_name ~ '^(TUT|LAB|REC)[0-9]{2}$'),
    CONSTRAINT valid_position CHECK (position >= 0)
);
`

const migration001Down = `
DROP TABLE IF EXISTS tutorial_groups;
DROP TABLE IF EXISTS persons;
DROP TABLE IF EXISTS address_book_meta;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: INDEX PERSON GROUPS
// ══════════════════════════════════════════════════════════════════════════════

const migration002Up = `
-- Supports "which persons are in group X" lookups from SQL clients.
CREATE INDEX IF NOT EXISTS idx_persons_groups ON persons USING GIN (groups jsonb_path_ops);
`

const migration002Down = `
DROP INDEX IF EXISTS idx_persons_groups;
`
