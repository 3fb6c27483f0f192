package group

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Weeks is the number of teaching weeks tracked per group.
const Weeks = 13

// Mark is the state of one attendance slot.
type Mark string

const (
	// Unmarked means no attendance has been recorded for the week.
	Unmarked Mark = "_"
	// Absent means the student missed the week.
	Absent Mark = "A"
	// Present means the student attended the week.
	Present Mark = "P"
)

var (
	attendanceRegex = regexp.MustCompile(`^[AP]$`)
	weekRegex       = regexp.MustCompile(`^[1-9]\d?$`)
)

// IsValidAttendance reports whether s is a mark a user may record (A or P).
func IsValidAttendance(s string) bool {
	return attendanceRegex.MatchString(s)
}

// IsValidWeek reports whether s is a week number between 1 and Weeks.
func IsValidWeek(s string) bool {
	if !weekRegex.MatchString(s) {
		return false
	}
	week, err := strconv.Atoi(s)
	return err == nil && week >= 1 && week <= Weeks
}

// Attendance is an ordered record of weekly marks. Index 0 holds week 1.
type Attendance []Mark

// NewAttendance returns Weeks unmarked slots.
func NewAttendance() Attendance {
	a := make(Attendance, Weeks)
	for i := range a {
		a[i] = Unmarked
	}
	return a
}

// AttendanceFromStrings copies a stored history verbatim.
func AttendanceFromStrings(history []string) Attendance {
	a := make(Attendance, len(history))
	for i, s := range history {
		a[i] = Mark(s)
	}
	return a
}

// Strings returns the marks as plain strings.
func (a Attendance) Strings() []string {
	out := make([]string, len(a))
	for i, m := range a {
		out[i] = string(m)
	}
	return out
}

// Clone returns an independent copy.
func (a Attendance) Clone() Attendance {
	if a == nil {
		return nil
	}
	out := make(Attendance, len(a))
	copy(out, a)
	return out
}

// Mark writes m into the slot for the 1-based week. The record is left
// untouched when the slot does not exist.
func (a Attendance) Mark(week int, m Mark) error {
	if week < 1 || week > len(a) {
		return shared.NewDomainError("group", "MarkAttendance", shared.ErrIndexOutOfRange,
			fmt.Sprintf("week %d is outside the recorded %d weeks", week, len(a)))
	}
	a[week-1] = m
	return nil
}

// Week returns the mark of the 1-based week, or Unmarked when the slot does not exist.
func (a Attendance) Week(week int) Mark {
	if week < 1 || week > len(a) {
		return Unmarked
	}
	return a[week-1]
}

// Equal reports whether both records hold the same marks in the same order.
func (a Attendance) Equal(other Attendance) bool {
	if len(a) != len(other) {
		return false
	}
	for i := range a {
		if a[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the record compactly, e.g. "AP___________".
func (a Attendance) String() string {
	b := make([]byte, 0, len(a))
	for _, m := range a {
		b = append(b, m...)
	}
	return string(b)
}
