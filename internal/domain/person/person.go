// Package person holds the contact entry of a student and the predicates used
// to search the contact list.
// The package depends only on the group domain and golang.org/x/text.
package person

import (
	"fmt"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person is one contact. Identity is the name.
type Person struct {
	Name     Name
	Phone    Phone
	Email    Email
	Year     Year
	Major    Major
	Telegram Telegram
	Remark   Remark

	// Groups keeps insertion order and holds at most one membership per group name.
	Groups []group.Membership
}

// Params carries raw field values for New.
type Params struct {
	Name     string
	Phone    string
	Email    string
	Year     string
	Major    string
	Telegram string
	Remark   string
	Groups   []group.Membership
}

// New creates a person with validation of all fields.
func New(params Params) (*Person, error) {
	name, err := NewName(params.Name)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(params.Phone)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	year, err := NewYear(params.Year)
	if err != nil {
		return nil, err
	}
	major, err := NewMajor(params.Major)
	if err != nil {
		return nil, err
	}
	telegram, err := NewTelegram(params.Telegram)
	if err != nil {
		return nil, err
	}

	p := &Person{
		Name:     name,
		Phone:    phone,
		Email:    email,
		Year:     year,
		Major:    major,
		Telegram: telegram,
		Remark:   NewRemark(params.Remark),
	}
	for _, m := range params.Groups {
		if !group.IsValidName(m.Name) {
			return nil, shared.NewDomainError("person", "New", shared.ErrInvalidFormat, group.MessageConstraints)
		}
		if p.HasGroup(m.Name) {
			continue
		}
		p.Groups = append(p.Groups, m.Clone())
	}
	return p, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// HasGroup reports whether the person is a member of the named group.
func (p *Person) HasGroup(name string) bool {
	return p.membershipIndex(name) >= 0
}

// Membership returns the person's own record of the named group.
func (p *Person) Membership(name string) (*group.Membership, bool) {
	i := p.membershipIndex(name)
	if i < 0 {
		return nil, false
	}
	return &p.Groups[i], true
}

// GroupNames lists membership names in order.
func (p *Person) GroupNames() []string {
	names := make([]string, len(p.Groups))
	for i, m := range p.Groups {
		names[i] = m.Name
	}
	return names
}

// WithoutGroup returns a copy of the person with the named membership removed.
// The receiver is returned unchanged when it is not a member.
func (p *Person) WithoutGroup(name string) *Person {
	if !p.HasGroup(name) {
		return p
	}
	clone := p.Clone()
	i := clone.membershipIndex(name)
	clone.Groups = append(clone.Groups[:i], clone.Groups[i+1:]...)
	return clone
}

// SameIdentity reports whether other has the same name.
func (p *Person) SameIdentity(other *Person) bool {
	if p == other {
		return true
	}
	return p != nil && other != nil && p.Name == other.Name
}

// Equal reports whether every field, memberships included, matches.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.Name != other.Name || p.Phone != other.Phone || p.Email != other.Email ||
		p.Year != other.Year || p.Major != other.Major ||
		p.Telegram != other.Telegram || p.Remark != other.Remark {
		return false
	}
	if len(p.Groups) != len(other.Groups) {
		return false
	}
	for i := range p.Groups {
		if !p.Groups[i].Equal(other.Groups[i]) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the person.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Groups != nil {
		clone.Groups = make([]group.Membership, len(p.Groups))
		for i, m := range p.Groups {
			clone.Groups[i] = m.Clone()
		}
	}
	return &clone
}

// String returns a single-line description for logs and list output.
func (p *Person) String() string {
	var b strings.Builder
	b.WriteString(string(p.Name))
	writeField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "; %s: %s", label, value)
		}
	}
	writeField("Phone", string(p.Phone))
	writeField("Email", string(p.Email))
	writeField("Year", string(p.Year))
	writeField("Major", string(p.Major))
	writeField("Telegram", string(p.Telegram))
	writeField("Remark", string(p.Remark))
	if len(p.Groups) > 0 {
		b.WriteString("; Groups: ")
		for _, m := range p.Groups {
			b.WriteString(m.String())
		}
	}
	return b.String()
}

func (p *Person) membershipIndex(name string) int {
	for i, m := range p.Groups {
		if m.Name == name {
			return i
		}
	}
	return -1
}
