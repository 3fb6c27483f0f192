package command

import (
	"context"
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Group command feedback; %s is the group name.
const (
	MessageAddGroupSuccess    = "New group added: %s"
	MessageEditGroupSuccess   = "Edited Group: %s"
	MessageDeleteGroupSuccess = "Deleted Group: %s"
)

// AddGroup registers a group.
type AddGroup struct {
	Group *group.Group
}

// Execute registers the group unless one with the same name exists.
func (c AddGroup) Execute(ctx context.Context, m model.Model) (*Result, error) {
	exists, err := m.HasGroup(c.Group)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicateGroup
	}
	if err := m.AddGroup(c.Group); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("group registered", logger.GroupName(c.Group.Name))
	return NewResult(fmt.Sprintf(MessageAddGroupSuccess, c.Group.Name)), nil
}

// EditGroup replaces the invite link of a registered group.
type EditGroup struct {
	Name string
	Link string
}

// Execute relinks the registry record named Name.
func (c EditGroup) Execute(ctx context.Context, m model.Model) (*Result, error) {
	target, ok := m.FindGroup(c.Name)
	if !ok {
		return nil, shared.ErrGroupNotFound
	}
	edited := target.Clone()
	edited.TelegramLink = c.Link
	if err := m.SetGroup(target, edited); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("group relinked", logger.GroupName(c.Name))
	return NewResult(fmt.Sprintf(MessageEditGroupSuccess, c.Name)), nil
}

// DeleteGroup removes a group from the registry and from every person.
type DeleteGroup struct {
	Name string
}

// Execute strips the membership from every person, then drops the record.
func (c DeleteGroup) Execute(ctx context.Context, m model.Model) (*Result, error) {
	target, ok := m.FindGroup(c.Name)
	if !ok {
		return nil, shared.ErrGroupNotFound
	}
	stripped := 0
	for _, p := range m.AddressBook().Persons() {
		if !p.HasGroup(c.Name) {
			continue
		}
		if err := m.SetPerson(p, p.WithoutGroup(c.Name)); err != nil {
			return nil, err
		}
		stripped++
	}
	if err := m.DeleteGroup(target); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("group deleted",
		logger.GroupName(c.Name), logger.Count("memberships_removed", stripped))
	return NewResult(fmt.Sprintf(MessageDeleteGroupSuccess, c.Name)), nil
}
