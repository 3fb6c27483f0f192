package command

import (
	"context"
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD
// ══════════════════════════════════════════════════════════════════════════════

// MessageAddSuccess is the feedback of add; %s is the new person.
const MessageAddSuccess = "New person added: %s"

// Add inserts a new person. Groups the person belongs to that are not in the
// registry yet are registered without a link.
type Add struct {
	Person *person.Person
}

// Execute adds the person after registering its groups.
func (c Add) Execute(_ context.Context, m model.Model) (*Result, error) {
	exists, err := m.HasPerson(c.Person)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicatePerson
	}
	if err := registerGroups(m, c.Person); err != nil {
		return nil, err
	}
	if err := m.AddPerson(c.Person); err != nil {
		return nil, err
	}
	return NewResult(fmt.Sprintf(MessageAddSuccess, c.Person)), nil
}

func registerGroups(m model.Model, p *person.Person) error {
	for _, membership := range p.Groups {
		if _, ok := m.FindGroup(membership.Name); ok {
			continue
		}
		g, err := group.New(membership.Name)
		if err != nil {
			return err
		}
		if err := m.AddGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// EDIT
// ══════════════════════════════════════════════════════════════════════════════

// Edit feedback and failure messages.
const (
	MessageEditSuccess   = "Edited Person: %s"
	MessageNotEdited     = "At least one field to edit must be provided."
	MessageDuplicateEdit = "This person already exists in the address book."
)

// EditDescriptor holds the fields to change. nil means keep the current value.
type EditDescriptor struct {
	Name     *person.Name
	Phone    *person.Phone
	Email    *person.Email
	Year     *person.Year
	Major    *person.Major
	Telegram *person.Telegram
	Remark   *person.Remark
	// Groups replaces the membership list when non-nil. An empty slice clears it.
	Groups *[]string
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Year != nil ||
		d.Major != nil || d.Telegram != nil || d.Remark != nil || d.Groups != nil
}

// apply builds the edited person. Memberships kept by name keep their attendance.
func (d EditDescriptor) apply(p *person.Person) (*person.Person, error) {
	edited := p.Clone()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Year != nil {
		edited.Year = *d.Year
	}
	if d.Major != nil {
		edited.Major = *d.Major
	}
	if d.Telegram != nil {
		edited.Telegram = *d.Telegram
	}
	if d.Remark != nil {
		edited.Remark = *d.Remark
	}
	if d.Groups != nil {
		var memberships []group.Membership
		seen := make(map[string]bool)
		for _, name := range *d.Groups {
			if seen[name] {
				continue
			}
			seen[name] = true
			if existing, ok := p.Membership(name); ok {
				memberships = append(memberships, existing.Clone())
				continue
			}
			m, err := group.NewMembership(name)
			if err != nil {
				return nil, err
			}
			memberships = append(memberships, m)
		}
		edited.Groups = memberships
	}
	return edited, nil
}

// Edit changes the person at Index in the displayed list.
type Edit struct {
	Index      Index
	Descriptor EditDescriptor
}

// Execute applies the descriptor to the person shown at Index.
func (c Edit) Execute(ctx context.Context, m model.Model) (*Result, error) {
	target, err := personAt(m, c.Index, "edit")
	if err != nil {
		return nil, err
	}
	edited, err := c.Descriptor.apply(target)
	if err != nil {
		return nil, err
	}
	if !target.SameIdentity(edited) {
		exists, err := m.HasPerson(edited)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("command", "edit", shared.ErrDuplicateEntity, MessageDuplicateEdit)
		}
	}
	if err := registerGroups(m, edited); err != nil {
		return nil, err
	}
	if err := m.SetPerson(target, edited); err != nil {
		return nil, err
	}
	m.UpdateFilteredPersons(person.AllPersons{})
	logger.FromContext(ctx).Info("person edited", logger.PersonIndex(int(c.Index)))
	return NewResult(fmt.Sprintf(MessageEditSuccess, edited)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DELETE / CLEAR / LIST
// ══════════════════════════════════════════════════════════════════════════════

// Delete, clear and list feedback.
const (
	MessageDeleteSuccess = "Deleted Person: %s"
	MessageClearSuccess  = "Address book has been cleared!"
	MessageListSuccess   = "Listed all persons"
)

// Delete removes the person at Index in the displayed list.
type Delete struct {
	Index Index
}

// Execute removes the person shown at Index.
func (c Delete) Execute(ctx context.Context, m model.Model) (*Result, error) {
	target, err := personAt(m, c.Index, "delete")
	if err != nil {
		return nil, err
	}
	if err := m.DeletePerson(target); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("person deleted", logger.PersonIndex(int(c.Index)))
	return NewResult(fmt.Sprintf(MessageDeleteSuccess, target)), nil
}

// Clear empties the address book, registry included.
type Clear struct{}

// Execute replaces the book with an empty one.
func (Clear) Execute(_ context.Context, m model.Model) (*Result, error) {
	if err := m.SetAddressBook(addressbook.New()); err != nil {
		return nil, err
	}
	return NewResult(MessageClearSuccess), nil
}

// List shows every person.
type List struct{}

// Execute resets the filter.
func (List) Execute(_ context.Context, m model.Model) (*Result, error) {
	m.UpdateFilteredPersons(person.AllPersons{})
	return NewResult(MessageListSuccess), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// FIND / FILTER
// ══════════════════════════════════════════════════════════════════════════════

// Find shows persons whose name contains any of the keywords.
type Find struct {
	Predicate person.NameContainsKeywords
}

// Execute narrows the displayed list by name.
func (c Find) Execute(_ context.Context, m model.Model) (*Result, error) {
	m.UpdateFilteredPersons(c.Predicate)
	return NewResult(listedOverview(m)), nil
}

// Filter shows persons belonging to any of the keyword groups.
type Filter struct {
	Predicate person.GroupContainsKeywords
}

// Execute narrows the displayed list by group.
func (c Filter) Execute(_ context.Context, m model.Model) (*Result, error) {
	m.UpdateFilteredPersons(c.Predicate)
	return NewResult(listedOverview(m)), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HELP / EXIT
// ══════════════════════════════════════════════════════════════════════════════

// Help and exit feedback.
const (
	MessageShowingHelp = "Opened help window."
	MessageExiting     = "Exiting Address Book as requested ..."
)

// Help asks the front-end to show the usage overview.
type Help struct{}

// Execute flags the result for the help view.
func (Help) Execute(context.Context, model.Model) (*Result, error) {
	return &Result{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

// Exit asks the front-end to stop.
type Exit struct{}

// Execute flags the result for shutdown.
func (Exit) Execute(context.Context, model.Model) (*Result, error) {
	return &Result{Feedback: MessageExiting, Exit: true}, nil
}
