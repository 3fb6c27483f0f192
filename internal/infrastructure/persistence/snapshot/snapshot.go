// Package snapshot converts an address book to and from its persisted JSON
// form. Every store (file, PostgreSQL, Redis) writes the same document.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Messages for stored data that cannot be loaded.
const (
	MessageMissingField     = "Person's %s field is missing!"
	MessageDuplicatePerson  = "Persons list contains duplicate person(s)."
	MessageDuplicateGroup   = "Groups list contains duplicate group(s)."
	MessageInvalidMark      = "Attendance marks must be one of _, A or P."
	MessageMalformedPayload = "Stored address book is not valid JSON."
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORDS
// ══════════════════════════════════════════════════════════════════════════════

// Document is the root of a persisted address book.
type Document struct {
	Persons []PersonRecord `json:"persons"`
	Groups  []GroupRecord  `json:"groups"`
}

// PersonRecord is the stored form of a person.
type PersonRecord struct {
	Name     string             `json:"name"`
	Phone    string             `json:"phone"`
	Email    string             `json:"email"`
	Year     string             `json:"year"`
	Major    string             `json:"major"`
	Telegram string             `json:"telegram"`
	Remark   string             `json:"remark"`
	Groups   []MembershipRecord `json:"groups"`
}

// MembershipRecord is the stored form of a person's group membership.
type MembershipRecord struct {
	GroupName  string   `json:"groupName"`
	Attendance []string `json:"attendance"`
}

// GroupRecord is the stored form of a registry group.
type GroupRecord struct {
	GroupName    string   `json:"groupName"`
	TelegramLink string   `json:"telegramLink"`
	Attendance   []string `json:"attendance"`
}

func illegal(op, message string, err error) error {
	if err != nil {
		return shared.WrapError("snapshot", op, shared.ErrIllegalValue, message, err)
	}
	return shared.NewDomainError("snapshot", op, shared.ErrIllegalValue, message)
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN -> RECORD
// ══════════════════════════════════════════════════════════════════════════════

// FromAddressBook captures the content of ab.
func FromAddressBook(ab addressbook.ReadOnly) *Document {
	persons := ab.Persons()
	groups := ab.Groups()

	doc := &Document{
		Persons: make([]PersonRecord, 0, len(persons)),
		Groups:  make([]GroupRecord, 0, len(groups)),
	}
	for _, p := range persons {
		doc.Persons = append(doc.Persons, FromPerson(p))
	}
	for _, g := range groups {
		doc.Groups = append(doc.Groups, FromGroup(g))
	}
	return doc
}

// FromPerson converts p to its stored form.
func FromPerson(p *person.Person) PersonRecord {
	rec := PersonRecord{
		Name:     p.Name.String(),
		Phone:    p.Phone.String(),
		Email:    p.Email.String(),
		Year:     p.Year.String(),
		Major:    p.Major.String(),
		Telegram: p.Telegram.String(),
		Remark:   p.Remark.String(),
		Groups:   make([]MembershipRecord, 0, len(p.Groups)),
	}
	for _, m := range p.Groups {
		rec.Groups = append(rec.Groups, MembershipRecord{GroupName: m.Name, Attendance: m.Attendance.Strings()})
	}
	return rec
}

// FromGroup converts g to its stored form.
func FromGroup(g *group.Group) GroupRecord {
	return GroupRecord{
		GroupName:    g.Name,
		TelegramLink: g.TelegramLink,
		Attendance:   g.Attendance.Strings(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// RECORD -> DOMAIN
// ══════════════════════════════════════════════════════════════════════════════

// ToAddressBook validates the document and builds an address book from it.
// Any violation is reported as shared.ErrIllegalValue.
func (d *Document) ToAddressBook() (*addressbook.AddressBook, error) {
	snap := &book{}
	for _, rec := range d.Persons {
		p, err := rec.ToPerson()
		if err != nil {
			return nil, err
		}
		snap.persons = append(snap.persons, p)
	}
	for _, rec := range d.Groups {
		g, err := rec.ToGroup()
		if err != nil {
			return nil, err
		}
		snap.groups = append(snap.groups, g)
	}

	ab, err := addressbook.NewFrom(snap)
	switch {
	case err == nil:
		return ab, nil
	case errors.Is(err, shared.ErrDuplicateGroup):
		return nil, illegal("ToAddressBook", MessageDuplicateGroup, err)
	case errors.Is(err, shared.ErrDuplicatePerson):
		return nil, illegal("ToAddressBook", MessageDuplicatePerson, err)
	default:
		return nil, illegal("ToAddressBook", shared.Message(err), err)
	}
}

// ToPerson validates the record and builds a person.
func (r PersonRecord) ToPerson() (*person.Person, error) {
	if r.Name == "" {
		return nil, illegal("ToPerson", fmt.Sprintf(MessageMissingField, "Name"), nil)
	}

	memberships := make([]group.Membership, 0, len(r.Groups))
	for _, mr := range r.Groups {
		m, err := mr.ToMembership()
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	p, err := person.New(person.Params{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Year:     r.Year,
		Major:    r.Major,
		Telegram: r.Telegram,
		Remark:   r.Remark,
		Groups:   memberships,
	})
	if err != nil {
		return nil, illegal("ToPerson", shared.Message(err), err)
	}
	return p, nil
}

// ToMembership validates the record and builds a membership.
func (r MembershipRecord) ToMembership() (group.Membership, error) {
	history, err := restoreHistory(r.Attendance)
	if err != nil {
		return group.Membership{}, err
	}
	m, err := group.NewMembershipWithAttendance(r.GroupName, history)
	if err != nil {
		return group.Membership{}, illegal("ToMembership", group.MessageConstraints, err)
	}
	return m, nil
}

// ToGroup validates the record and builds a registry group.
func (r GroupRecord) ToGroup() (*group.Group, error) {
	history, err := restoreHistory(r.Attendance)
	if err != nil {
		return nil, err
	}
	g, err := group.NewWithAttendance(r.GroupName, history)
	if err != nil {
		return nil, illegal("ToGroup", group.MessageConstraints, err)
	}
	if r.TelegramLink != "" && !group.IsValidLink(r.TelegramLink) {
		return nil, illegal("ToGroup", group.MessageLinkConstraints, nil)
	}
	g.TelegramLink = r.TelegramLink
	return g, nil
}

// restoreHistory checks every mark. An absent history becomes a fresh set
// of unmarked weeks.
func restoreHistory(history []string) ([]string, error) {
	if len(history) == 0 {
		return group.NewAttendance().Strings(), nil
	}
	for _, s := range history {
		if s != string(group.Unmarked) && !group.IsValidAttendance(s) {
			return nil, illegal("restoreHistory", MessageInvalidMark, nil)
		}
	}
	return history, nil
}

// book adapts decoded slices to addressbook.ReadOnly.
type book struct {
	persons []*person.Person
	groups  []*group.Group
}

func (b *book) Persons() []*person.Person { return b.persons }
func (b *book) Groups() []*group.Group    { return b.groups }

// ══════════════════════════════════════════════════════════════════════════════
// ENCODING
// ══════════════════════════════════════════════════════════════════════════════

// Encode renders ab as indented JSON.
func Encode(ab addressbook.ReadOnly) ([]byte, error) {
	data, err := json.MarshalIndent(FromAddressBook(ab), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Decode parses data and builds the address book it describes.
func Decode(data []byte) (*addressbook.AddressBook, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, illegal("Decode", MessageMalformedPayload, err)
	}
	return doc.ToAddressBook()
}
