// Package main is the entry point of the tutors' contact book: a terminal
// REPL over persons, tutorial groups and weekly attendance.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tutorscontactpro/contacts/config"
	"github.com/tutorscontactpro/contacts/internal/application/logic"
	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence"
	"github.com/tutorscontactpro/contacts/internal/interface/cli"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	configPath := flag.String("config", os.Getenv("CONTACTS_CONFIG"), "path to a TOML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(persistence.LoggerOptions(cfg))
	defer func() { _ = log.Sync() }()

	log.Info("starting contact book",
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
		logger.Backend(cfg.Storage.Backend),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. STORAGE
	// ─────────────────────────────────────────────────────────────────────────
	store, err := persistence.Open(ctx, cfg.Storage.Backend, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := logic.LoadAddressBook(ctx, store, log)
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. REPL
	// ─────────────────────────────────────────────────────────────────────────
	manager := logic.NewManager(model.NewManager(book), store, log)
	repl := cli.NewREPL(manager, os.Stdin, os.Stdout, log)

	if err := repl.Run(ctx); err != nil {
		return err
	}

	log.Info("contact book stopped")
	return nil
}
