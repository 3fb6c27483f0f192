package parser

import (
	"fmt"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Dispatcher messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
)

// ErrUnknownCommand is returned for an unrecognised command word.
var ErrUnknownCommand = shared.NewDomainError("parser", "ParseCommand", shared.ErrInvalidCommandFormat, MessageUnknownCommand)

func invalidFormat(op, usage string) error {
	return shared.NewDomainError("parser", op, shared.ErrInvalidCommandFormat,
		fmt.Sprintf(MessageInvalidCommandFormat, usage))
}

func wrapInvalidFormat(op, usage string, err error) error {
	return shared.WrapError("parser", op, shared.ErrInvalidCommandFormat,
		fmt.Sprintf(MessageInvalidCommandFormat, usage), err)
}

type parseFunc func(args string) (command.Command, error)

// noArgs builds a parser for commands that ignore their arguments.
func noArgs(cmd command.Command) parseFunc {
	return func(string) (command.Command, error) { return cmd, nil }
}

var parsers = map[string]parseFunc{
	WordAdd:         parseAdd,
	WordEdit:        parseEdit,
	WordDelete:      parseDelete,
	WordClear:       noArgs(command.Clear{}),
	WordList:        noArgs(command.List{}),
	WordFind:        parseFind,
	WordFilter:      parseFilter,
	WordAddGroup:    parseAddGroup,
	WordEditGroup:   parseEditGroup,
	WordDeleteGroup: parseDeleteGroup,
	WordMark:        parseMark,
	WordMail:        parseMail,
	WordMailTG:      parseMailTelegram,
	WordHelp:        noArgs(command.Help{}),
	WordExit:        noArgs(command.Exit{}),
}

// SplitCommand returns the command word and the remaining arguments. The
// arguments keep their leading whitespace so the first prefix is recognised.
func SplitCommand(input string) (word, args string) {
	trimmed := strings.TrimSpace(input)
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return trimmed, ""
	}
	return trimmed[:i], trimmed[i:]
}

// ParseCommand turns one line of user input into a command. Parsing never
// touches the model.
func ParseCommand(input string) (command.Command, error) {
	word, args := SplitCommand(input)
	if word == "" {
		return nil, invalidFormat("ParseCommand", UsageHelp)
	}
	parse, ok := parsers[word]
	if !ok {
		return nil, ErrUnknownCommand
	}
	return parse(args)
}
