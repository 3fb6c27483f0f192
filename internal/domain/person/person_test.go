package person

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

func membership(t *testing.T, name string) group.Membership {
	t.Helper()
	m, err := group.NewMembership(name)
	require.NoError(t, err)
	return m
}

func TestFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"name simple", true, Name("Alice Pauline").IsValid},
		{"name digits", true, Name("Peter 2nd").IsValid},
		{"name blank", false, Name("").IsValid},
		{"name double space", false, Name("Alice  Pauline").IsValid},
		{"name symbol", false, Name("Alice*").IsValid},
		{"phone empty", true, Phone("").IsValid},
		{"phone short", false, Phone("12").IsValid},
		{"phone ok", true, Phone("94351253").IsValid},
		{"phone letters", false, Phone("9435a253").IsValid},
		{"email empty", true, Email("").IsValid},
		{"email ok", true, Email("alice@example.com").IsValid},
		{"email plus", true, Email("a+b@u.nus.edu").IsValid},
		{"email no domain dot", false, Email("alice@example").IsValid},
		{"email no at", false, Email("alice.example.com").IsValid},
		{"year empty", true, Year("").IsValid},
		{"year ok", true, Year("2").IsValid},
		{"year zero", false, Year("0").IsValid},
		{"year seven", false, Year("7").IsValid},
		{"major ok", true, Major("Computer Science").IsValid},
		{"major leading space", false, Major(" CS").IsValid},
		{"telegram empty", true, Telegram("").IsValid},
		{"telegram at", true, Telegram("@alice_p").IsValid},
		{"telegram bare", true, Telegram("alice_p").IsValid},
		{"telegram short", false, Telegram("@ali").IsValid},
		{"telegram dash", false, Telegram("@alice-p").IsValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.check())
		})
	}
}

func TestNewName_TrimsAndRejects(t *testing.T) {
	n, err := NewName("  Alice Pauline ")
	require.NoError(t, err)
	assert.Equal(t, Name("Alice Pauline"), n)

	_, err = NewName("   ")
	assert.True(t, errors.Is(err, shared.ErrInvalidFormat))
	assert.Equal(t, MessageNameConstraints, shared.Message(err))
}

func TestNew(t *testing.T) {
	p, err := New(Params{
		Name:     "Alice Pauline",
		Phone:    "94351253",
		Email:    "alice@example.com",
		Year:     "2",
		Major:    "Computer Science",
		Telegram: "@alice_p",
		Remark:   " quiet ",
		Groups:   []group.Membership{membership(t, "TUT04"), membership(t, "LAB10"), membership(t, "TUT04")},
	})
	require.NoError(t, err)
	assert.Equal(t, Remark("quiet"), p.Remark)
	assert.Equal(t, []string{"TUT04", "LAB10"}, p.GroupNames(), "duplicate memberships are dropped")

	_, err = New(Params{Name: "Bob", Email: "bob"})
	assert.True(t, errors.Is(err, shared.ErrInvalidFormat))
	assert.Equal(t, MessageEmailConstraints, shared.Message(err))

	_, err = New(Params{Name: "Bob", Groups: []group.Membership{{Name: "bad"}}})
	assert.True(t, errors.Is(err, shared.ErrInvalidFormat))
}

func TestPerson_Membership(t *testing.T) {
	p, err := New(Params{Name: "Alice", Groups: []group.Membership{membership(t, "TUT04")}})
	require.NoError(t, err)

	m, ok := p.Membership("TUT04")
	require.True(t, ok)
	require.NoError(t, m.MarkAttendance(1, group.Present))
	assert.Equal(t, group.Present, p.Groups[0].Attendance.Week(1), "membership pointer refers to the person's own record")

	_, ok = p.Membership("LAB01")
	assert.False(t, ok)
	assert.False(t, p.HasGroup("LAB01"))
}

func TestPerson_WithoutGroup(t *testing.T) {
	p, err := New(Params{Name: "Alice", Groups: []group.Membership{membership(t, "TUT04"), membership(t, "LAB10")}})
	require.NoError(t, err)

	stripped := p.WithoutGroup("TUT04")
	assert.Equal(t, []string{"LAB10"}, stripped.GroupNames())
	assert.Equal(t, []string{"TUT04", "LAB10"}, p.GroupNames(), "original is untouched")

	assert.Same(t, p, p.WithoutGroup("REC01"))
}

func TestPerson_Identity(t *testing.T) {
	a, _ := New(Params{Name: "Alice", Phone: "123"})
	b, _ := New(Params{Name: "Alice", Phone: "456"})
	c, _ := New(Params{Name: "Bob"})

	assert.True(t, a.SameIdentity(b))
	assert.False(t, a.Equal(b))
	assert.False(t, a.SameIdentity(c))
	assert.False(t, a.SameIdentity(nil))

	clone := a.Clone()
	assert.True(t, a.Equal(clone))
	assert.NotSame(t, a, clone)
}

func TestPerson_EqualComparesMemberships(t *testing.T) {
	a, _ := New(Params{Name: "Alice", Groups: []group.Membership{membership(t, "TUT04")}})
	b := a.Clone()
	assert.True(t, a.Equal(b))

	m, _ := b.Membership("TUT04")
	require.NoError(t, m.MarkAttendance(2, group.Absent))
	assert.False(t, a.Equal(b))
}

func TestPerson_String(t *testing.T) {
	p, _ := New(Params{Name: "Alice", Email: "alice@example.com", Groups: []group.Membership{membership(t, "TUT04")}})
	assert.Equal(t, "Alice; Email: alice@example.com; Groups: [TUT04]", p.String())
}

func TestPredicates(t *testing.T) {
	alice, _ := New(Params{Name: "Alice Pauline", Groups: []group.Membership{membership(t, "TUT04")}})
	bob, _ := New(Params{Name: "Bob Meier", Groups: []group.Membership{membership(t, "LAB10")}})

	t.Run("all", func(t *testing.T) {
		assert.True(t, AllPersons{}.Test(alice))
	})

	t.Run("name", func(t *testing.T) {
		pred := NameContainsKeywords{Keywords: []string{"pauline"}}
		assert.True(t, pred.Test(alice))
		assert.False(t, pred.Test(bob))

		partial := NameContainsKeywords{Keywords: []string{"Paul"}}
		assert.False(t, partial.Test(alice), "whole words only")

		none := NameContainsKeywords{}
		assert.False(t, none.Test(alice))
	})

	t.Run("group", func(t *testing.T) {
		pred := GroupContainsKeywords{Keywords: []string{"tut04", "REC01"}}
		assert.True(t, pred.Test(alice))
		assert.False(t, pred.Test(bob))

		both := GroupContainsKeywords{Keywords: []string{"TUT04", "LAB10"}}
		assert.True(t, both.Test(alice))
		assert.True(t, both.Test(bob))
	})
}
