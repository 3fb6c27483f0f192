// Package model exposes the address book to commands together with the
// filtered person list that the user currently sees.
package model

import (
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// Model is the state commands operate on. Indices typed by the user always
// refer to FilteredPersons.
type Model interface {
	AddressBook() addressbook.ReadOnly
	SetAddressBook(snapshot addressbook.ReadOnly) error

	HasPerson(p *person.Person) (bool, error)
	AddPerson(p *person.Person) error
	SetPerson(target, edited *person.Person) error
	DeletePerson(target *person.Person) error

	HasGroup(g *group.Group) (bool, error)
	FindGroup(name string) (*group.Group, bool)
	AddGroup(g *group.Group) error
	SetGroup(target, edited *group.Group) error
	DeleteGroup(target *group.Group) error

	FilteredPersons() []*person.Person
	UpdateFilteredPersons(pred person.Predicate)
}

// Manager is the default Model backed by an AddressBook.
type Manager struct {
	book   *addressbook.AddressBook
	filter person.Predicate
}

// NewManager wraps book and shows every person. A nil book starts empty.
func NewManager(book *addressbook.AddressBook) *Manager {
	if book == nil {
		book = addressbook.New()
	}
	return &Manager{book: book, filter: person.AllPersons{}}
}

// AddressBook returns the underlying address book.
func (m *Manager) AddressBook() addressbook.ReadOnly {
	return m.book
}

// Book returns the concrete address book.
func (m *Manager) Book() *addressbook.AddressBook {
	return m.book
}

func (m *Manager) SetAddressBook(snapshot addressbook.ReadOnly) error {
	return m.book.ResetData(snapshot)
}

func (m *Manager) HasPerson(p *person.Person) (bool, error) {
	return m.book.HasPerson(p)
}

// AddPerson adds p and resets the filter so the new entry is visible.
func (m *Manager) AddPerson(p *person.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.UpdateFilteredPersons(person.AllPersons{})
	return nil
}

func (m *Manager) SetPerson(target, edited *person.Person) error {
	return m.book.SetPerson(target, edited)
}

func (m *Manager) DeletePerson(target *person.Person) error {
	return m.book.RemovePerson(target)
}

func (m *Manager) HasGroup(g *group.Group) (bool, error) {
	return m.book.HasGroup(g)
}

func (m *Manager) FindGroup(name string) (*group.Group, bool) {
	return m.book.FindGroup(name)
}

func (m *Manager) AddGroup(g *group.Group) error {
	return m.book.AddGroup(g)
}

func (m *Manager) SetGroup(target, edited *group.Group) error {
	return m.book.SetGroup(target, edited)
}

func (m *Manager) DeleteGroup(target *group.Group) error {
	return m.book.RemoveGroup(target)
}

// FilteredPersons evaluates the current filter against the address book.
func (m *Manager) FilteredPersons() []*person.Person {
	var out []*person.Person
	for _, p := range m.book.Persons() {
		if m.filter.Test(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilteredPersons replaces the filter. nil shows everyone.
func (m *Manager) UpdateFilteredPersons(pred person.Predicate) {
	if pred == nil {
		pred = person.AllPersons{}
	}
	m.filter = pred
}

var _ Model = (*Manager)(nil)
