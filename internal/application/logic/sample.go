package logic

import (
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// SampleAddressBook returns the data a first-time user starts with.
func SampleAddressBook() *addressbook.AddressBook {
	ab := addressbook.New()

	tut04, _ := group.NewWithLink("TUT04", "https://t.me/cs2103_tut04")
	lab10, _ := group.New("LAB10")
	for _, g := range []*group.Group{tut04, lab10} {
		_ = ab.AddGroup(g)
	}

	samples := []struct {
		params person.Params
		groups []string
	}{
		{person.Params{Name: "Alex Yeoh", Phone: "87438807", Email: "alexyeoh@example.com",
			Year: "1", Major: "Computer Science", Telegram: "@alexyeoh"}, []string{"TUT04"}},
		{person.Params{Name: "Bernice Yu", Phone: "99272758", Email: "berniceyu@example.com",
			Year: "2", Major: "Business Analytics", Telegram: "@berniceyu", Remark: "Prefers email"}, []string{"TUT04", "LAB10"}},
		{person.Params{Name: "Charlotte Oliveiro", Phone: "93210283", Email: "charlotte@example.com",
			Year: "1", Major: "Information Systems", Telegram: "@charlotte_o"}, []string{"LAB10"}},
		{person.Params{Name: "David Li", Phone: "91031282", Email: "lidavid@example.com",
			Year: "3", Major: "Computer Engineering", Telegram: "@davidli"}, nil},
		{person.Params{Name: "Irfan Ibrahim", Phone: "92492021", Email: "irfan@example.com",
			Year: "2", Major: "Computer Science", Telegram: "@irfan_ibrahim"}, []string{"TUT04"}},
	}

	for _, s := range samples {
		for _, name := range s.groups {
			m, _ := group.NewMembership(name)
			s.params.Groups = append(s.params.Groups, m)
		}
		p, err := person.New(s.params)
		if err != nil {
			continue
		}
		_ = ab.AddPerson(p)
	}
	return ab
}
