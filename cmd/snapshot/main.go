// Package main copies the address book between storage backends, or writes
// the attendance workbook of one backend's address book.
//
//	snapshot -from json -to postgres
//	snapshot -from redis -xlsx attendance.xlsx
//	snapshot -migrations status
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tutorscontactpro/contacts/config"
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/export/xlsx"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

type options struct {
	configPath string
	from       string
	to         string
	xlsxPath   string
	migrations string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", os.Getenv("CONTACTS_CONFIG"), "path to a TOML config file")
	flag.StringVar(&opts.from, "from", "", "source backend (json, postgres, redis); defaults to STORAGE_BACKEND")
	flag.StringVar(&opts.to, "to", "", "destination backend")
	flag.StringVar(&opts.xlsxPath, "xlsx", "", "write the attendance workbook to this path instead of copying")
	flag.StringVar(&opts.migrations, "migrations", "", "show (status) or revert the newest (rollback) PostgreSQL migration")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(persistence.LoggerOptions(cfg)).With(logger.Component("snapshot"))
	defer func() { _ = log.Sync() }()

	if opts.migrations != "" {
		return runMigrations(ctx, cfg, opts.migrations, log)
	}

	if opts.from == "" {
		opts.from = cfg.Storage.Backend
	}
	if opts.to == "" && opts.xlsxPath == "" {
		return errors.New("one of -to or -xlsx is required")
	}
	if opts.to == opts.from {
		return fmt.Errorf("source and destination are both %q", opts.from)
	}

	src, err := persistence.Open(ctx, opts.from, cfg, log)
	if err != nil {
		return err
	}
	defer src.Close()

	book, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load from %s: %w", opts.from, err)
	}

	if opts.xlsxPath != "" {
		return exportWorkbook(book, opts.xlsxPath, log)
	}

	dst, err := persistence.Open(ctx, opts.to, cfg, log)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := dst.Save(ctx, book); err != nil {
		return fmt.Errorf("save to %s: %w", opts.to, err)
	}
	log.Info("address book copied",
		logger.String("from", opts.from), logger.String("to", opts.to),
		logger.Count("persons", len(book.Persons())), logger.Count("groups", len(book.Groups())))
	return nil
}

func runMigrations(ctx context.Context, cfg *config.Config, action string, log *logger.Logger) error {
	migrations, err := persistence.Migrations(ctx, cfg, action, log)
	if err != nil {
		return err
	}
	if action == persistence.MigrationsRollback && len(migrations) == 0 {
		fmt.Println("no applied migrations")
		return nil
	}
	for _, m := range migrations {
		state := "pending"
		if m.IsApplied {
			state = "applied " + m.AppliedAt.Format(time.RFC3339)
		} else if action == persistence.MigrationsRollback {
			state = "rolled back"
		}
		fmt.Printf("%3d  %-28s %s\n", m.Version, m.Name, state)
	}
	return nil
}

func exportWorkbook(book addressbook.ReadOnly, path string, log *logger.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := xlsx.Export(book, f); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.Info("attendance workbook written", logger.String("path", path))
	return nil
}
