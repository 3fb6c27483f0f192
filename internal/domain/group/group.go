// Package group models tutorial, lab and recitation sections.
//
// A section exists in two shapes joined only by name:
//
//   - Group is the registry record owned by the address book. It carries the
//     Telegram invite link.
//   - Membership is the copy a person owns. It carries that person's weekly
//     attendance and no link.
//
// Neither shape holds a reference to the other, so marking a person's
// attendance never touches the registry record.
package group

import (
	"regexp"

	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Validation messages shown to the user.
const (
	MessageConstraints = "Groups names should be in correct format with 2 digit number. " +
		"E.g. g/TUT04, g/LAB10, g/REC09. Link should be a valid Telegram invite link."
	MessageKeywordConstraints    = "Groups names should be in correct format with 2 digit number. E.g. TUT04, LAB10, REC09."
	MessageLinkConstraints       = "Link should be a valid Telegram invite link, e.g. https://t.me/tut04_group"
	MessageWeekConstraints       = "Week number should be an integer between 1 and 13."
	MessageAttendanceConstraints = "Attendance should be A or P."
)

var (
	nameRegex = regexp.MustCompile(`^(TUT|LAB|REC)\d{2}$`)
	linkRegex = regexp.MustCompile(`^https://t\.me/[A-Za-z0-9_]+$`)
)

// IsValidName reports whether s is a well-formed group name such as TUT04.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// IsValidLink reports whether s is a Telegram invite link.
func IsValidLink(s string) bool {
	return linkRegex.MatchString(s)
}

func invalidName(op string) error {
	return shared.NewDomainError("group", op, shared.ErrInvalidFormat, MessageConstraints)
}

// Group is a section as held by the address book registry.
type Group struct {
	Name         string
	TelegramLink string
	Attendance   Attendance
}

// New creates a group with Weeks unmarked attendance slots.
func New(name string) (*Group, error) {
	if !IsValidName(name) {
		return nil, invalidName("New")
	}
	return &Group{Name: name, Attendance: NewAttendance()}, nil
}

// NewWithLink creates a group carrying an invite link. The link may be empty.
// Attendance slots are allocated exactly as in New.
func NewWithLink(name, link string) (*Group, error) {
	if !IsValidName(name) {
		return nil, invalidName("NewWithLink")
	}
	if link != "" && !IsValidLink(link) {
		return nil, shared.NewDomainError("group", "NewWithLink", shared.ErrInvalidFormat, MessageLinkConstraints)
	}
	return &Group{Name: name, TelegramLink: link, Attendance: NewAttendance()}, nil
}

// NewWithAttendance creates a group from a stored history, copied verbatim.
func NewWithAttendance(name string, history []string) (*Group, error) {
	if !IsValidName(name) {
		return nil, invalidName("NewWithAttendance")
	}
	return &Group{Name: name, Attendance: AttendanceFromStrings(history)}, nil
}

// MarkAttendance records mark for the 1-based week.
func (g *Group) MarkAttendance(week int, mark Mark) error {
	return g.Attendance.Mark(week, mark)
}

// SameIdentity reports whether other names the same group.
func (g *Group) SameIdentity(other *Group) bool {
	if g == other {
		return true
	}
	return g != nil && other != nil && g.Name == other.Name
}

// Equal reports whether every field of other matches.
func (g *Group) Equal(other *Group) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	return g.Name == other.Name &&
		g.TelegramLink == other.TelegramLink &&
		g.Attendance.Equal(other.Attendance)
}

// Membership returns a fresh person-owned copy of this group.
func (g *Group) Membership() Membership {
	return Membership{Name: g.Name, Attendance: g.Attendance.Clone()}
}

// Clone returns an independent copy.
func (g *Group) Clone() *Group {
	return &Group{Name: g.Name, TelegramLink: g.TelegramLink, Attendance: g.Attendance.Clone()}
}

func (g *Group) String() string {
	return "[" + g.Name + "]"
}

// Membership is a person's own record of a group.
type Membership struct {
	Name       string
	Attendance Attendance
}

// NewMembership creates a membership with Weeks unmarked slots.
func NewMembership(name string) (Membership, error) {
	if !IsValidName(name) {
		return Membership{}, invalidName("NewMembership")
	}
	return Membership{Name: name, Attendance: NewAttendance()}, nil
}

// NewMembershipWithAttendance restores a membership from a stored history.
func NewMembershipWithAttendance(name string, history []string) (Membership, error) {
	if !IsValidName(name) {
		return Membership{}, invalidName("NewMembershipWithAttendance")
	}
	return Membership{Name: name, Attendance: AttendanceFromStrings(history)}, nil
}

// MarkAttendance records mark for the 1-based week.
func (m *Membership) MarkAttendance(week int, mark Mark) error {
	return m.Attendance.Mark(week, mark)
}

// SameIdentity reports whether both memberships name the same group.
func (m Membership) SameIdentity(other Membership) bool {
	return m.Name == other.Name
}

// Equal reports whether name and attendance match.
func (m Membership) Equal(other Membership) bool {
	return m.Name == other.Name && m.Attendance.Equal(other.Attendance)
}

// Clone returns an independent copy.
func (m Membership) Clone() Membership {
	return Membership{Name: m.Name, Attendance: m.Attendance.Clone()}
}

func (m Membership) String() string {
	return "[" + m.Name + "]"
}
