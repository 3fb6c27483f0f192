// Package addressbook contains the aggregate root that owns every person and
// the registry of groups.
package addressbook

import (
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// ReadOnly is the view of an address book handed to storage and to ResetData.
type ReadOnly interface {
	Persons() []*person.Person
	Groups() []*group.Group
}

// AddressBook keeps persons and groups in insertion order, each unique by
// weak identity (name).
type AddressBook struct {
	persons []*person.Person
	groups  []*group.Group
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{}
}

// NewFrom returns an address book holding the data of snapshot.
func NewFrom(snapshot ReadOnly) (*AddressBook, error) {
	ab := New()
	if err := ab.ResetData(snapshot); err != nil {
		return nil, err
	}
	return ab, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// BULK
// ══════════════════════════════════════════════════════════════════════════════

// ResetData replaces all content with that of snapshot. On failure the
// address book is left as it was.
func (ab *AddressBook) ResetData(snapshot ReadOnly) error {
	if snapshot == nil {
		return shared.ErrNilSnapshot
	}

	persons := snapshot.Persons()
	for i, p := range persons {
		if p == nil {
			return shared.ErrNilPerson
		}
		for _, q := range persons[:i] {
			if p.SameIdentity(q) {
				return shared.ErrDuplicatePerson
			}
		}
	}

	groups := snapshot.Groups()
	for i, g := range groups {
		if g == nil {
			return shared.ErrNilGroup
		}
		for _, h := range groups[:i] {
			if g.SameIdentity(h) {
				return shared.ErrDuplicateGroup
			}
		}
	}

	ab.persons = clonePersons(persons)
	ab.groups = cloneGroups(groups)
	return nil
}

// Persons returns deep copies of the persons in order. Changing them does
// not change the book.
func (ab *AddressBook) Persons() []*person.Person {
	return clonePersons(ab.persons)
}

// Groups returns deep copies of the registry in order.
func (ab *AddressBook) Groups() []*group.Group {
	return cloneGroups(ab.groups)
}

func clonePersons(persons []*person.Person) []*person.Person {
	out := make([]*person.Person, len(persons))
	for i, p := range persons {
		out[i] = p.Clone()
	}
	return out
}

func cloneGroups(groups []*group.Group) []*group.Group {
	out := make([]*group.Group, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// PERSONS
// ══════════════════════════════════════════════════════════════════════════════

// HasPerson reports whether a person with the same identity exists.
func (ab *AddressBook) HasPerson(p *person.Person) (bool, error) {
	if p == nil {
		return false, shared.ErrNilPerson
	}
	return ab.personIndex(p.SameIdentity) >= 0, nil
}

// AddPerson appends p.
func (ab *AddressBook) AddPerson(p *person.Person) error {
	exists, err := ab.HasPerson(p)
	if err != nil {
		return err
	}
	if exists {
		return shared.ErrDuplicatePerson
	}
	ab.persons = append(ab.persons, p.Clone())
	return nil
}

// SetPerson replaces the person sharing target's identity with edited, in
// place. edited may keep or change the identity, but must not collide with
// another person.
func (ab *AddressBook) SetPerson(target, edited *person.Person) error {
	if target == nil || edited == nil {
		return shared.ErrNilPerson
	}
	i := ab.personIndex(target.SameIdentity)
	if i < 0 {
		return shared.ErrPersonNotFound
	}
	if !target.SameIdentity(edited) {
		if exists, _ := ab.HasPerson(edited); exists {
			return shared.ErrDuplicatePerson
		}
	}
	ab.persons[i] = edited.Clone()
	return nil
}

// RemovePerson deletes the person sharing key's identity.
func (ab *AddressBook) RemovePerson(key *person.Person) error {
	if key == nil {
		return shared.ErrNilPerson
	}
	i := ab.personIndex(key.SameIdentity)
	if i < 0 {
		return shared.ErrPersonNotFound
	}
	ab.persons = append(ab.persons[:i], ab.persons[i+1:]...)
	return nil
}

func (ab *AddressBook) personIndex(match func(*person.Person) bool) int {
	for i, p := range ab.persons {
		if match(p) {
			return i
		}
	}
	return -1
}

// ══════════════════════════════════════════════════════════════════════════════
// GROUPS
// ══════════════════════════════════════════════════════════════════════════════

// HasGroup reports whether a group with the same name is registered.
func (ab *AddressBook) HasGroup(g *group.Group) (bool, error) {
	if g == nil {
		return false, shared.ErrNilGroup
	}
	return ab.groupIndex(g.SameIdentity) >= 0, nil
}

// FindGroup returns a copy of the registry record with the given name.
func (ab *AddressBook) FindGroup(name string) (*group.Group, bool) {
	i := ab.groupIndex(func(g *group.Group) bool { return g.Name == name })
	if i < 0 {
		return nil, false
	}
	return ab.groups[i].Clone(), true
}

// AddGroup registers g.
func (ab *AddressBook) AddGroup(g *group.Group) error {
	exists, err := ab.HasGroup(g)
	if err != nil {
		return err
	}
	if exists {
		return shared.ErrDuplicateGroup
	}
	ab.groups = append(ab.groups, g.Clone())
	return nil
}

// SetGroup replaces the group named like target with edited, in place.
func (ab *AddressBook) SetGroup(target, edited *group.Group) error {
	if target == nil || edited == nil {
		return shared.ErrNilGroup
	}
	i := ab.groupIndex(target.SameIdentity)
	if i < 0 {
		return shared.ErrGroupNotFound
	}
	if !target.SameIdentity(edited) {
		if exists, _ := ab.HasGroup(edited); exists {
			return shared.ErrDuplicateGroup
		}
	}
	ab.groups[i] = edited.Clone()
	return nil
}

// RemoveGroup deletes the group named like key from the registry.
// Memberships held by persons are not touched.
func (ab *AddressBook) RemoveGroup(key *group.Group) error {
	if key == nil {
		return shared.ErrNilGroup
	}
	i := ab.groupIndex(key.SameIdentity)
	if i < 0 {
		return shared.ErrGroupNotFound
	}
	ab.groups = append(ab.groups[:i], ab.groups[i+1:]...)
	return nil
}

func (ab *AddressBook) groupIndex(match func(*group.Group) bool) int {
	for i, g := range ab.groups {
		if match(g) {
			return i
		}
	}
	return -1
}

// ══════════════════════════════════════════════════════════════════════════════
// COMPARISON
// ══════════════════════════════════════════════════════════════════════════════

// Equal reports whether both books hold equal persons and groups in the same order.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if ab == other {
		return true
	}
	if ab == nil || other == nil {
		return false
	}
	if len(ab.persons) != len(other.persons) || len(ab.groups) != len(other.groups) {
		return false
	}
	for i := range ab.persons {
		if !ab.persons[i].Equal(other.persons[i]) {
			return false
		}
	}
	for i := range ab.groups {
		if !ab.groups[i].Equal(other.groups[i]) {
			return false
		}
	}
	return true
}

func (ab *AddressBook) String() string {
	return fmt.Sprintf("%d persons, %d groups", len(ab.persons), len(ab.groups))
}
