package command

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Mail feedback and the welcome mail template.
const (
	MessageShowMail         = "Showing the Email window"
	MessageShowTelegramMail = "Showing the email window"

	telegramSubject = "Welcome to Group %s"
	telegramBody    = "Greetings,\n\nWelcome to Group %s.\n\n" +
		"Please join this Telegram group: %s.\n\n" +
		"Sent from TutorsContactPro."
)

// Mail builds a mailto link addressed to every person in the address book
// matching Predicate. A nil Predicate selects everyone. The displayed list
// is ignored.
type Mail struct {
	Predicate person.Predicate
}

// Execute collects the matching emails into a mailto link.
func (c Mail) Execute(_ context.Context, m model.Model) (*Result, error) {
	pred := c.Predicate
	if pred == nil {
		pred = person.AllPersons{}
	}
	return NewMailResult(MessageShowMail, "mailto:"+recipients(m, pred)), nil
}

// MailTelegram builds a welcome mail for the members of one group carrying
// the group's Telegram invite link.
type MailTelegram struct {
	Group string
}

// Execute builds the welcome link. A group without a registry record gets an
// empty invite link.
func (c MailTelegram) Execute(ctx context.Context, m model.Model) (*Result, error) {
	to := recipients(m, person.GroupContainsKeywords{Keywords: []string{c.Group}})

	var link string
	if g, ok := m.FindGroup(c.Group); ok {
		link = g.TelegramLink
	}
	if link == "" {
		logger.FromContext(ctx).Warn("group has no invite link", logger.GroupName(c.Group))
	}

	subject := fmt.Sprintf(telegramSubject, c.Group)
	body := fmt.Sprintf(telegramBody, c.Group, link)
	return NewMailResult(MessageShowTelegramMail, MailtoURL(to, subject, body)), nil
}

// MailtoURL assembles a mailto link with an escaped subject and body.
// Spaces are written as %20 since mail clients do not decode "+".
func MailtoURL(recipients, subject, body string) string {
	return "mailto:" + recipients +
		"?subject=" + escape(subject) +
		"&body=" + escape(body)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// recipients joins the non-empty emails of matching persons with ";".
func recipients(m model.Model, pred person.Predicate) string {
	var emails []string
	for _, p := range m.AddressBook().Persons() {
		if p.Email != "" && pred.Test(p) {
			emails = append(emails, string(p.Email))
		}
	}
	return strings.Join(emails, ";")
}
