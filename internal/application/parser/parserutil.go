package parser

import (
	"strconv"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// MessageInvalidIndex is returned for an index that is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

func parseError(op, message string) error {
	return shared.NewDomainError("parser", op, shared.ErrParse, message)
}

// asParseError re-kinds a domain validation error as a parse error and keeps
// its user message.
func asParseError(op string, err error) error {
	return shared.WrapError("parser", op, shared.ErrParse, shared.Message(err), err)
}

// ParseIndex parses a 1-based list index.
func ParseIndex(s string) (command.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || strings.HasPrefix(s, "+") {
		return 0, parseError("ParseIndex", MessageInvalidIndex)
	}
	return command.Index(n), nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PERSON FIELDS
// ══════════════════════════════════════════════════════════════════════════════

func ParseName(s string) (person.Name, error) {
	n, err := person.NewName(s)
	if err != nil {
		return "", asParseError("ParseName", err)
	}
	return n, nil
}

func ParsePhone(s string) (person.Phone, error) {
	p, err := person.NewPhone(s)
	if err != nil {
		return "", asParseError("ParsePhone", err)
	}
	return p, nil
}

func ParseEmail(s string) (person.Email, error) {
	e, err := person.NewEmail(s)
	if err != nil {
		return "", asParseError("ParseEmail", err)
	}
	return e, nil
}

func ParseYear(s string) (person.Year, error) {
	y, err := person.NewYear(s)
	if err != nil {
		return "", asParseError("ParseYear", err)
	}
	return y, nil
}

func ParseMajor(s string) (person.Major, error) {
	m, err := person.NewMajor(s)
	if err != nil {
		return "", asParseError("ParseMajor", err)
	}
	return m, nil
}

func ParseTelegram(s string) (person.Telegram, error) {
	t, err := person.NewTelegram(s)
	if err != nil {
		return "", asParseError("ParseTelegram", err)
	}
	return t, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// GROUP FIELDS
// ══════════════════════════════════════════════════════════════════════════════

// ParseGroupName validates a group name such as TUT04.
func ParseGroupName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !group.IsValidName(s) {
		return "", parseError("ParseGroupName", group.MessageConstraints)
	}
	return s, nil
}

// ParseGroupNames validates every name and drops repeats, keeping the first.
func ParseGroupNames(values []string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, v := range values {
		name, err := ParseGroupName(v)
		if err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// ParseGroupKeyword validates a filter keyword. Case is ignored.
func ParseGroupKeyword(s string) (string, error) {
	if !group.IsValidName(strings.ToUpper(s)) {
		return "", parseError("ParseGroupKeyword", group.MessageKeywordConstraints)
	}
	return s, nil
}

// ParseLink validates a Telegram invite link.
func ParseLink(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !group.IsValidLink(s) {
		return "", parseError("ParseLink", group.MessageLinkConstraints)
	}
	return s, nil
}

// ParseWeek validates a week number. This is the only place the 1..13 range
// is enforced.
func ParseWeek(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !group.IsValidWeek(s) {
		return 0, parseError("ParseWeek", group.MessageWeekConstraints)
	}
	week, _ := strconv.Atoi(s)
	return week, nil
}

// ParseAttendance validates an attendance mark (A or P).
func ParseAttendance(s string) (group.Mark, error) {
	s = strings.TrimSpace(s)
	if !group.IsValidAttendance(s) {
		return "", parseError("ParseAttendance", group.MessageAttendanceConstraints)
	}
	return group.Mark(s), nil
}
