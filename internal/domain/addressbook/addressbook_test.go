package addressbook_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/testutil"
)

func TestNew_Empty(t *testing.T) {
	ab := addressbook.New()
	assert.Empty(t, ab.Persons())
	assert.Empty(t, ab.Groups())
	assert.Equal(t, "0 persons, 0 groups", ab.String())
}

func TestResetData(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		err := addressbook.New().ResetData(nil)
		assert.True(t, errors.Is(err, shared.ErrNullArgument))
	})

	t.Run("valid snapshot replaces data", func(t *testing.T) {
		ab := addressbook.New()
		typical := testutil.TypicalAddressBook()
		require.NoError(t, ab.ResetData(typical))
		assert.True(t, ab.Equal(typical))
	})

	t.Run("duplicate persons", func(t *testing.T) {
		alice := testutil.TypicalPersons()[0]
		edited := testutil.PersonBuilderFrom(alice).WithRemark("changed").WithGroups("LAB02").Build()
		ab := testutil.TypicalAddressBook()
		before := testutil.TypicalAddressBook()

		err := ab.ResetData(testutil.Snapshot{PersonList: []*person.Person{alice, edited}})
		assert.True(t, errors.Is(err, shared.ErrDuplicateEntity))
		assert.Equal(t, shared.ErrDuplicatePerson.Message, shared.Message(err))
		assert.True(t, ab.Equal(before), "failed reset must leave state unchanged")
	})

	t.Run("duplicate groups", func(t *testing.T) {
		a, _ := group.NewWithLink("TUT01", testutil.LinkTUT01)
		b, _ := group.New("TUT01")
		ab := testutil.TypicalAddressBook()
		before := testutil.TypicalAddressBook()

		err := ab.ResetData(testutil.Snapshot{GroupList: []*group.Group{a, b}})
		assert.True(t, errors.Is(err, shared.ErrDuplicateEntity))
		assert.Equal(t, shared.ErrDuplicateGroup.Message, shared.Message(err))
		assert.True(t, ab.Equal(before))
	})

	t.Run("snapshot slices are not aliased", func(t *testing.T) {
		persons := testutil.TypicalPersons()
		ab, err := addressbook.NewFrom(testutil.Snapshot{PersonList: persons})
		require.NoError(t, err)
		persons[0] = nil
		assert.NotNil(t, ab.Persons()[0])
	})
}

func TestHasPerson(t *testing.T) {
	ab := addressbook.New()
	alice := testutil.TypicalPersons()[0]

	_, err := ab.HasPerson(nil)
	assert.True(t, errors.Is(err, shared.ErrNullArgument))

	has, err := ab.HasPerson(alice)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, ab.AddPerson(alice))
	has, _ = ab.HasPerson(alice)
	assert.True(t, has)

	sameName := testutil.PersonBuilderFrom(alice).WithPhone("111").WithGroups().Build()
	has, _ = ab.HasPerson(sameName)
	assert.True(t, has, "weak identity matches on name")
}

func TestAddPerson_Duplicate(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	alice := testutil.TypicalPersons()[0]

	err := ab.AddPerson(alice)
	assert.True(t, errors.Is(err, shared.ErrDuplicateEntity))
	assert.Len(t, ab.Persons(), len(testutil.TypicalPersons()))

	assert.True(t, errors.Is(ab.AddPerson(nil), shared.ErrNullArgument))
}

func TestSetPerson(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	persons := ab.Persons()
	alice, benson := persons[0], persons[1]

	edited := testutil.PersonBuilderFrom(alice).WithPhone("11111111").Build()
	require.NoError(t, ab.SetPerson(alice, edited))
	assert.True(t, edited.Equal(ab.Persons()[0]), "position is kept")

	renamed := testutil.PersonBuilderFrom(edited).WithName("Alice Renamed").Build()
	require.NoError(t, ab.SetPerson(edited, renamed))

	clash := testutil.PersonBuilderFrom(renamed).WithName(string(benson.Name)).Build()
	err := ab.SetPerson(renamed, clash)
	assert.True(t, errors.Is(err, shared.ErrDuplicateEntity))

	missing := testutil.NewPersonBuilder().Build()
	err = ab.SetPerson(missing, missing)
	assert.True(t, errors.Is(err, shared.ErrEntityNotFound))
}

func TestRemovePerson(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	alice := ab.Persons()[0]

	require.NoError(t, ab.RemovePerson(alice))
	has, _ := ab.HasPerson(alice)
	assert.False(t, has)

	err := ab.RemovePerson(alice)
	assert.True(t, errors.Is(err, shared.ErrEntityNotFound))
}

func TestGroups(t *testing.T) {
	ab := testutil.TypicalAddressBook()

	_, err := ab.HasGroup(nil)
	assert.True(t, errors.Is(err, shared.ErrNullArgument))

	tut01, ok := ab.FindGroup("TUT01")
	require.True(t, ok)
	assert.Equal(t, testutil.LinkTUT01, tut01.TelegramLink)

	_, ok = ab.FindGroup("TUT99")
	assert.False(t, ok)

	dup, _ := group.New("TUT01")
	assert.True(t, errors.Is(ab.AddGroup(dup), shared.ErrDuplicateEntity))

	relinked, _ := group.NewWithLink("TUT01", "https://t.me/new_tut01")
	require.NoError(t, ab.SetGroup(tut01, relinked))
	got, _ := ab.FindGroup("TUT01")
	assert.Equal(t, "https://t.me/new_tut01", got.TelegramLink)

	unknown, _ := group.New("TUT99")
	assert.True(t, errors.Is(ab.SetGroup(unknown, relinked), shared.ErrEntityNotFound))

	require.NoError(t, ab.RemoveGroup(relinked))
	assert.True(t, errors.Is(ab.RemoveGroup(relinked), shared.ErrEntityNotFound))

	stillMember, _ := ab.HasPerson(testutil.TypicalPersons()[0])
	assert.True(t, stillMember)
	assert.True(t, ab.Persons()[0].HasGroup("TUT01"), "removing a registry record keeps memberships")
}

func TestGroupsMatchedByName(t *testing.T) {
	ab := addressbook.New()
	linked, _ := group.NewWithLink("TUT01", "https://t.me/tut01")
	marked, _ := group.New("LAB02")
	require.NoError(t, marked.MarkAttendance(1, group.Present))
	require.NoError(t, ab.AddGroup(linked))
	require.NoError(t, ab.AddGroup(marked))

	bareLab, _ := group.New("LAB02")
	relinked, _ := group.NewWithLink("LAB02", "https://t.me/lab02")
	require.NoError(t, ab.SetGroup(bareLab, relinked))
	got, ok := ab.FindGroup("LAB02")
	require.True(t, ok)
	assert.Equal(t, "https://t.me/lab02", got.TelegramLink)

	bareTut, _ := group.New("TUT01")
	require.NoError(t, ab.RemoveGroup(bareTut))
	_, ok = ab.FindGroup("TUT01")
	assert.False(t, ok)
	assert.Len(t, ab.Groups(), 1)
}

func TestPersonsMatchedByName(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	alice := ab.Persons()[0]
	stale := testutil.PersonBuilderFrom(alice).WithPhone("99999999").Build()

	edited := testutil.PersonBuilderFrom(alice).WithRemark("moved to TUT02").Build()
	require.NoError(t, ab.SetPerson(stale, edited))
	assert.True(t, edited.Equal(ab.Persons()[0]))

	require.NoError(t, ab.RemovePerson(stale))
	has, _ := ab.HasPerson(alice)
	assert.False(t, has)
}

func TestReadViewsCannotChangeTheBook(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	before := testutil.TypicalAddressBook()

	ab.Persons()[1].Name = ab.Persons()[0].Name
	ab.Persons()[0].Groups[0].Attendance[0] = group.Present
	ab.Groups()[0].TelegramLink = "https://t.me/hijacked"
	found, ok := ab.FindGroup("TUT01")
	require.True(t, ok)
	found.TelegramLink = "https://t.me/hijacked"

	assert.True(t, before.Equal(ab))
}

func TestStoredEntitiesAreCopied(t *testing.T) {
	ab := addressbook.New()
	p := testutil.NewPersonBuilder().WithName("Amy Bee").Build()
	g, _ := group.New("TUT04")
	require.NoError(t, ab.AddPerson(p))
	require.NoError(t, ab.AddGroup(g))

	p.Name = "Someone Else"
	g.TelegramLink = "https://t.me/changed"

	has, _ := ab.HasPerson(testutil.NewPersonBuilder().WithName("Amy Bee").Build())
	assert.True(t, has)
	got, _ := ab.FindGroup("TUT04")
	assert.Empty(t, got.TelegramLink)
}

func TestAccessorsReturnCopies(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	persons := ab.Persons()
	persons[0] = nil
	groups := ab.Groups()
	groups = groups[:0]

	assert.NotNil(t, ab.Persons()[0])
	assert.Len(t, ab.Groups(), len(testutil.TypicalGroups()))
	assert.Empty(t, groups)
}

func TestEqual(t *testing.T) {
	a := testutil.TypicalAddressBook()
	b := testutil.TypicalAddressBook()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(addressbook.New()))

	require.NoError(t, b.RemovePerson(b.Persons()[0]))
	assert.False(t, a.Equal(b))
}
