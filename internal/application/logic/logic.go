// Package logic runs one line of user input end to end: parse it, execute
// the command against the model, then persist the address book.
package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/application/parser"
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// MessageSaveFailed is shown when the command ran but the data could not be stored.
const MessageSaveFailed = "Could not save data: %s"

// ErrSaveFailed is the kind of errors returned when persisting fails.
var ErrSaveFailed = errors.New("save failed")

// Manager owns the model and its repository.
type Manager struct {
	model *model.Manager
	repo  addressbook.Repository
	log   *logger.Logger
}

// NewManager wires m to repo. repo may be nil for an unsaved session.
func NewManager(m *model.Manager, repo addressbook.Repository, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{model: m, repo: repo, log: log.With(logger.Component("logic"))}
}

// Execute parses input, runs the command and saves the result.
// A parse or command error leaves both the model and the store untouched.
func (l *Manager) Execute(ctx context.Context, input string) (*command.Result, error) {
	start := time.Now()
	word, _ := parser.SplitCommand(input)
	log := l.log.WithRequestID(uuid.NewString()).With(logger.CommandWord(word))
	ctx = logger.WithContext(ctx, log)

	cmd, err := parser.ParseCommand(input)
	if err != nil {
		log.Debug("command rejected", logger.Err(err))
		return nil, err
	}

	result, err := cmd.Execute(ctx, l.model)
	if err != nil {
		log.Info("command failed", logger.Err(err), logger.Latency(time.Since(start)))
		return nil, err
	}

	if err := l.save(ctx); err != nil {
		log.Error("save failed", logger.Err(err))
		return nil, shared.WrapError("logic", "Execute", ErrSaveFailed,
			fmt.Sprintf(MessageSaveFailed, err.Error()), err)
	}

	log.Info("command executed",
		logger.Count("shown", len(l.model.FilteredPersons())),
		logger.Latency(time.Since(start)))
	return result, nil
}

func (l *Manager) save(ctx context.Context) error {
	if l.repo == nil {
		return nil
	}
	return l.repo.Save(ctx, l.model.AddressBook())
}

// AddressBook returns a read-only view of the current data.
func (l *Manager) AddressBook() addressbook.ReadOnly {
	return l.model.AddressBook()
}

// FilteredPersons returns the persons currently shown.
func (l *Manager) FilteredPersons() []*person.Person {
	return l.model.FilteredPersons()
}

// ══════════════════════════════════════════════════════════════════════════════
// START-UP
// ══════════════════════════════════════════════════════════════════════════════

// LoadAddressBook reads the stored address book. When nothing is stored yet
// it returns the sample data; when the stored data is unusable it returns an
// empty book. Other errors are returned.
func LoadAddressBook(ctx context.Context, repo addressbook.Repository, log *logger.Logger) (*addressbook.AddressBook, error) {
	if log == nil {
		log = logger.Nop()
	}
	ab, err := repo.Load(ctx)
	switch {
	case err == nil:
		log.Info("address book loaded",
			logger.Count("persons", len(ab.Persons())), logger.Count("groups", len(ab.Groups())))
		return ab, nil
	case errors.Is(err, shared.ErrSnapshotNotFound):
		log.Info("no stored address book, starting with sample data")
		return SampleAddressBook(), nil
	case errors.Is(err, shared.ErrIllegalValue):
		log.Warn("stored address book is invalid, starting with an empty one", logger.Err(err))
		return addressbook.New(), nil
	default:
		return nil, err
	}
}
