// Package cli is the terminal front-end: a line-oriented REPL and the
// plain-text rendering of the person list.
package cli

import (
	"fmt"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// ══════════════════════════════════════════════════════════════════════════════
// PERSON LIST PRESENTER
// Renders the shown persons as an "All" section followed by one section per
// group any shown person belongs to.
// ══════════════════════════════════════════════════════════════════════════════

// ListPresenter formats person lists.
type ListPresenter struct{}

// NewListPresenter creates a presenter.
func NewListPresenter() *ListPresenter {
	return &ListPresenter{}
}

// Render returns the full list view for persons.
func (p *ListPresenter) Render(persons []*person.Person) string {
	var sb strings.Builder

	sb.WriteString(p.sectionTitle("All"))
	if len(persons) == 0 {
		sb.WriteString("  (no persons)\n")
	}
	for i, ps := range persons {
		sb.WriteString(p.FormatCard(ps, i+1))
	}

	for _, name := range groupsOf(persons) {
		sb.WriteString("\n")
		sb.WriteString(p.sectionTitle(name))
		n := 0
		for _, ps := range persons {
			if !ps.HasGroup(name) {
				continue
			}
			n++
			sb.WriteString(p.FormatCard(ps, n))
		}
	}
	return sb.String()
}

// FormatCard renders one person with its 1-based display index.
func (p *ListPresenter) FormatCard(ps *person.Person, index int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d. %s\n", index, ps.Name))

	field := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("   %-9s %s\n", label+":", value))
		}
	}
	field("Phone", ps.Phone.String())
	field("Email", ps.Email.String())
	field("Year", ps.Year.String())
	field("Major", ps.Major.String())
	field("Telegram", ps.Telegram.String())
	field("Remark", ps.Remark.String())

	for _, m := range ps.Groups {
		sb.WriteString(fmt.Sprintf("   [%s] %s\n", m.Name, FormatAttendance(m.Attendance)))
	}
	return sb.String()
}

// FormatAttendance renders marks as "W1:P W2:A ..." skipping nothing.
func FormatAttendance(a group.Attendance) string {
	parts := make([]string, len(a))
	for i, m := range a {
		parts[i] = fmt.Sprintf("W%d:%s", i+1, m)
	}
	return strings.Join(parts, " ")
}

func (p *ListPresenter) sectionTitle(title string) string {
	return fmt.Sprintf("── %s ──\n", title)
}

// groupsOf returns the group names of persons in first-seen order.
func groupsOf(persons []*person.Person) []string {
	seen := make(map[string]bool)
	var names []string
	for _, ps := range persons {
		for _, name := range ps.GroupNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
