// Package xlsx exports the address book as an attendance workbook.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

// OverviewSheet lists every person with their groups.
const OverviewSheet = "Overview"

// OverviewHeaders is the first row of the overview sheet.
var OverviewHeaders = []string{"Name", "Email", "Telegram", "Groups"}

// GroupHeaders returns the first row of a group sheet.
func GroupHeaders() []string {
	headers := []string{"Name", "Email"}
	for w := 1; w <= group.Weeks; w++ {
		headers = append(headers, fmt.Sprintf("W%d", w))
	}
	return headers
}

// Export writes the workbook for ab to w: one overview sheet, then one sheet
// per registry group holding its members' own attendance.
func Export(ab addressbook.ReadOnly, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OverviewSheet); err != nil {
		return fmt.Errorf("xlsx: rename default sheet: %w", err)
	}
	persons := ab.Persons()
	if err := writeOverview(f, persons); err != nil {
		return err
	}

	for _, g := range ab.Groups() {
		if _, err := f.NewSheet(g.Name); err != nil {
			return fmt.Errorf("xlsx: create sheet %s: %w", g.Name, err)
		}
		if err := writeGroup(f, g.Name, persons); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}

func writeOverview(f *excelize.File, persons []*person.Person) error {
	if err := setRow(f, OverviewSheet, 1, OverviewHeaders); err != nil {
		return err
	}
	for i, p := range persons {
		row := []string{
			p.Name.String(),
			p.Email.String(),
			p.Telegram.String(),
			strings.Join(p.GroupNames(), ", "),
		}
		if err := setRow(f, OverviewSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeGroup(f *excelize.File, name string, persons []*person.Person) error {
	if err := setRow(f, name, 1, GroupHeaders()); err != nil {
		return err
	}
	row := 2
	for _, p := range persons {
		m, ok := p.Membership(name)
		if !ok {
			continue
		}
		values := []string{p.Name.String(), p.Email.String()}
		for w := 1; w <= group.Weeks; w++ {
			values = append(values, string(m.Attendance.Week(w)))
		}
		if err := setRow(f, name, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("xlsx: write %s row %d: %w", sheet, row, err)
	}
	return nil
}
