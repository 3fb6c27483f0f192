package person

import (
	"regexp"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Validation messages shown to the user.
const (
	MessageNameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints    = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints    = "Emails should be of the format local-part@domain, e.g. alice@example.com"
	MessageYearConstraints     = "Year should be a single digit between 1 and 6"
	MessageMajorConstraints    = "Major should not start with a whitespace"
	MessageTelegramConstraints = "Telegram handles should be 5 to 32 characters of letters, digits or underscores, optionally starting with @"
)

var (
	nameRegex     = regexp.MustCompile(`^[A-Za-z0-9]+( [A-Za-z0-9]+)*$`)
	phoneRegex    = regexp.MustCompile(`^\d{3,}$`)
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z0-9]{2,}$`)
	yearRegex     = regexp.MustCompile(`^[1-6]$`)
	majorRegex    = regexp.MustCompile(`^[^\s].*$`)
	telegramRegex = regexp.MustCompile(`^@?[A-Za-z0-9_]{5,32}$`)
)

func invalid(op, message string) error {
	return shared.NewDomainError("person", op, shared.ErrInvalidFormat, message)
}

// Name is a person's full name. It is also the person's identity.
type Name string

// IsValid checks that the name is alphanumeric words separated by single spaces.
func (n Name) IsValid() bool {
	return nameRegex.MatchString(string(n))
}

func (n Name) String() string { return string(n) }

// NewName validates s after trimming.
func NewName(s string) (Name, error) {
	n := Name(strings.TrimSpace(s))
	if !n.IsValid() {
		return "", invalid("NewName", MessageNameConstraints)
	}
	return n, nil
}

// Phone is an optional phone number.
type Phone string

// IsValid accepts the empty phone.
func (p Phone) IsValid() bool {
	return p == "" || phoneRegex.MatchString(string(p))
}

func (p Phone) String() string { return string(p) }

// NewPhone validates s after trimming.
func NewPhone(s string) (Phone, error) {
	p := Phone(strings.TrimSpace(s))
	if !p.IsValid() {
		return "", invalid("NewPhone", MessagePhoneConstraints)
	}
	return p, nil
}

// Email is an optional email address.
type Email string

// IsValid accepts the empty email.
func (e Email) IsValid() bool {
	return e == "" || emailRegex.MatchString(string(e))
}

func (e Email) String() string { return string(e) }

// NewEmail validates s after trimming.
func NewEmail(s string) (Email, error) {
	e := Email(strings.TrimSpace(s))
	if !e.IsValid() {
		return "", invalid("NewEmail", MessageEmailConstraints)
	}
	return e, nil
}

// Year is the optional year of study.
type Year string

// IsValid accepts the empty year.
func (y Year) IsValid() bool {
	return y == "" || yearRegex.MatchString(string(y))
}

func (y Year) String() string { return string(y) }

// NewYear validates s after trimming.
func NewYear(s string) (Year, error) {
	y := Year(strings.TrimSpace(s))
	if !y.IsValid() {
		return "", invalid("NewYear", MessageYearConstraints)
	}
	return y, nil
}

// Major is the optional field of study.
type Major string

// IsValid accepts the empty major.
func (m Major) IsValid() bool {
	return m == "" || majorRegex.MatchString(string(m))
}

func (m Major) String() string { return string(m) }

// NewMajor validates s after trimming.
func NewMajor(s string) (Major, error) {
	m := Major(strings.TrimSpace(s))
	if !m.IsValid() {
		return "", invalid("NewMajor", MessageMajorConstraints)
	}
	return m, nil
}

// Telegram is an optional Telegram handle.
type Telegram string

// IsValid accepts the empty handle.
func (t Telegram) IsValid() bool {
	return t == "" || telegramRegex.MatchString(string(t))
}

func (t Telegram) String() string { return string(t) }

// NewTelegram validates s after trimming.
func NewTelegram(s string) (Telegram, error) {
	t := Telegram(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", invalid("NewTelegram", MessageTelegramConstraints)
	}
	return t, nil
}

// Remark is free text attached by the tutor.
type Remark string

func (r Remark) String() string { return string(r) }

// NewRemark trims s. Any text is accepted.
func NewRemark(s string) Remark {
	return Remark(strings.TrimSpace(s))
}
