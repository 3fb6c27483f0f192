// Package command contains the executable user commands.
package command

import (
	"context"
	"fmt"

	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Messages shared by several commands.
const (
	MessageInvalidPersonDisplayedIndex = "The person index provided is invalid"
	MessagePersonsListedOverview       = "%d persons listed!"
)

// Command is a validated user request ready to run against a model.
// A command that returns an error leaves the model as it found it.
type Command interface {
	Execute(ctx context.Context, m model.Model) (*Result, error)
}

// ══════════════════════════════════════════════════════════════════════════════
// RESULT
// ══════════════════════════════════════════════════════════════════════════════

// Result tells the front-end what to show after a command ran.
type Result struct {
	Feedback   string
	MailtoLink string
	ShowHelp   bool
	ShowMail   bool
	Exit       bool
}

// NewResult returns a plain feedback result.
func NewResult(feedback string) *Result {
	return &Result{Feedback: feedback}
}

// NewMailResult returns a result carrying a mailto link.
func NewMailResult(feedback, link string) *Result {
	return &Result{Feedback: feedback, MailtoLink: link, ShowMail: true}
}

// ══════════════════════════════════════════════════════════════════════════════
// INDEX
// ══════════════════════════════════════════════════════════════════════════════

// Index is a 1-based position in the displayed person list.
type Index int

// Zero returns the 0-based offset.
func (i Index) Zero() int {
	return int(i) - 1
}

// personAt resolves idx against the filtered list.
func personAt(m model.Model, idx Index, op string) (*person.Person, error) {
	shown := m.FilteredPersons()
	if idx < 1 || idx.Zero() >= len(shown) {
		return nil, shared.NewDomainError("command", op, shared.ErrInvalidIndex,
			MessageInvalidPersonDisplayedIndex)
	}
	return shown[idx.Zero()], nil
}

func listedOverview(m model.Model) string {
	return fmt.Sprintf(MessagePersonsListedOverview, len(m.FilteredPersons()))
}
