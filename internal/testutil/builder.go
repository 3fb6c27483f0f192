// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// Default field values of PersonBuilder.
const (
	DefaultName     = "Amy Bee"
	DefaultPhone    = "85355255"
	DefaultEmail    = "amy@gmail.com"
	DefaultYear     = "2"
	DefaultMajor    = "Computer Science"
	DefaultTelegram = "@amybee"
	DefaultRemark   = ""
)

// PersonBuilder assembles persons field by field. Values are not validated.
type PersonBuilder struct {
	p person.Person
}

// NewPersonBuilder starts from the default values and no groups.
func NewPersonBuilder() *PersonBuilder {
	return &PersonBuilder{p: person.Person{
		Name:     DefaultName,
		Phone:    DefaultPhone,
		Email:    DefaultEmail,
		Year:     DefaultYear,
		Major:    DefaultMajor,
		Telegram: DefaultTelegram,
		Remark:   DefaultRemark,
	}}
}

// PersonBuilderFrom starts from a copy of p.
func PersonBuilderFrom(p *person.Person) *PersonBuilder {
	return &PersonBuilder{p: *p.Clone()}
}

func (b *PersonBuilder) WithName(v string) *PersonBuilder {
	b.p.Name = person.Name(v)
	return b
}

func (b *PersonBuilder) WithPhone(v string) *PersonBuilder {
	b.p.Phone = person.Phone(v)
	return b
}

func (b *PersonBuilder) WithEmail(v string) *PersonBuilder {
	b.p.Email = person.Email(v)
	return b
}

func (b *PersonBuilder) WithYear(v string) *PersonBuilder {
	b.p.Year = person.Year(v)
	return b
}

func (b *PersonBuilder) WithMajor(v string) *PersonBuilder {
	b.p.Major = person.Major(v)
	return b
}

func (b *PersonBuilder) WithTelegram(v string) *PersonBuilder {
	b.p.Telegram = person.Telegram(v)
	return b
}

func (b *PersonBuilder) WithRemark(v string) *PersonBuilder {
	b.p.Remark = person.Remark(v)
	return b
}

// WithGroups replaces the memberships with fresh ones for the given names.
func (b *PersonBuilder) WithGroups(names ...string) *PersonBuilder {
	b.p.Groups = nil
	for _, name := range names {
		b.p.Groups = append(b.p.Groups, group.Membership{Name: name, Attendance: group.NewAttendance()})
	}
	return b
}

// WithAttendance sets the history of an existing membership.
func (b *PersonBuilder) WithAttendance(name string, history ...string) *PersonBuilder {
	for i := range b.p.Groups {
		if b.p.Groups[i].Name == name {
			b.p.Groups[i].Attendance = group.AttendanceFromStrings(history)
		}
	}
	return b
}

// Build returns a new person.
func (b *PersonBuilder) Build() *person.Person {
	return b.p.Clone()
}
