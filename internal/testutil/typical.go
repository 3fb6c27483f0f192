package testutil

import (
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// Typical registry links.
const (
	LinkTUT01 = "https://t.me/tut01_group"
	LinkLAB02 = "https://t.me/lab02_group"
)

// TypicalPersons returns fresh copies of the standard fixture persons.
// Alice and Benson are in TUT01, Carl is in LAB02, Daniel is in both,
// the rest have no group. Elle has no email.
func TypicalPersons() []*person.Person {
	return []*person.Person{
		NewPersonBuilder().WithName("Alice Pauline").WithPhone("94351253").
			WithEmail("alice@example.com").WithTelegram("@alice_p").WithGroups("TUT01").Build(),
		NewPersonBuilder().WithName("Benson Meier").WithPhone("98765432").
			WithEmail("johnd@example.com").WithTelegram("@benson_m").WithRemark("owes homework").
			WithGroups("TUT01").Build(),
		NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").
			WithEmail("heinz@example.com").WithTelegram("@carl_kurz").WithGroups("LAB02").Build(),
		NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").
			WithEmail("cornelia@example.com").WithTelegram("@daniel_m").WithGroups("TUT01", "LAB02").Build(),
		NewPersonBuilder().WithName("Elle Meyer").WithPhone("9482224").
			WithEmail("").WithTelegram("@elle_meyer").Build(),
		NewPersonBuilder().WithName("Fiona Kunz").WithPhone("9482427").
			WithEmail("lydia@example.com").WithTelegram("@fiona_k").Build(),
		NewPersonBuilder().WithName("George Best").WithPhone("9482442").
			WithEmail("anna@example.com").WithTelegram("@george_b").Build(),
	}
}

// TypicalGroups returns fresh copies of the standard registry.
func TypicalGroups() []*group.Group {
	tut01, _ := group.NewWithLink("TUT01", LinkTUT01)
	lab02, _ := group.NewWithLink("LAB02", LinkLAB02)
	rec03, _ := group.New("REC03")
	return []*group.Group{tut01, lab02, rec03}
}

// TypicalAddressBook returns an address book with all typical persons and groups.
func TypicalAddressBook() *addressbook.AddressBook {
	ab := addressbook.New()
	for _, p := range TypicalPersons() {
		_ = ab.AddPerson(p)
	}
	for _, g := range TypicalGroups() {
		_ = ab.AddGroup(g)
	}
	return ab
}

// Snapshot is a plain ReadOnly value for feeding ResetData in tests.
type Snapshot struct {
	PersonList []*person.Person
	GroupList  []*group.Group
}

func (s Snapshot) Persons() []*person.Person { return s.PersonList }
func (s Snapshot) Groups() []*group.Group    { return s.GroupList }
