package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

func invalidFormatMessage(usage string) string {
	return fmt.Sprintf(MessageInvalidCommandFormat, usage)
}

func assertParseFailure(t *testing.T, input string, kind error, message string) {
	t.Helper()
	cmd, err := ParseCommand(input)
	require.Error(t, err, input)
	assert.Nil(t, cmd)
	assert.True(t, errors.Is(err, kind), "%q: got %v", input, err)
	if message != "" {
		assert.Equal(t, message, shared.Message(err), input)
	}
}

func TestParseCommand_Dispatch(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{"clear", command.Clear{}},
		{"clear 3", command.Clear{}},
		{"list", command.List{}},
		{"help", command.Help{}},
		{"exit", command.Exit{}},
		{"  delete 2  ", command.Delete{Index: 2}},
		{"find alice Bob", command.Find{Predicate: person.NameContainsKeywords{Keywords: []string{"alice", "Bob"}}}},
		{"filter tut01 LAB02", command.Filter{Predicate: person.GroupContainsKeywords{Keywords: []string{"tut01", "LAB02"}}}},
		{"mail", command.Mail{}},
		{"mail TUT01", command.Mail{Predicate: person.GroupContainsKeywords{Keywords: []string{"TUT01"}}}},
		{"mailtg g/TUT01", command.MailTelegram{Group: "TUT01"}},
		{"deletegroup g/LAB02", command.DeleteGroup{Name: "LAB02"}},
		{"editgroup g/LAB02 l/https://t.me/lab02", command.EditGroup{Name: "LAB02", Link: "https://t.me/lab02"}},
		{"mark 1 g/TUT04 w/3 a/A", command.MarkAttendance{Index: 1, Group: "TUT04", Week: 3, Mark: group.Absent}},
		{"mark 2 a/P w/13 g/REC09", command.MarkAttendance{Index: 2, Group: "REC09", Week: 13, Mark: group.Present}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_EmptyAndUnknown(t *testing.T) {
	assertParseFailure(t, "", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageHelp))
	assertParseFailure(t, "   ", shared.ErrInvalidCommandFormat, "")
	assertParseFailure(t, "unknownCommand", shared.ErrInvalidCommandFormat, MessageUnknownCommand)
	assertParseFailure(t, "MARK 1 g/TUT04 w/3 a/A", shared.ErrInvalidCommandFormat, MessageUnknownCommand)
}

func TestParseMark_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		message string
	}{
		{"missing group", "mark 1 w/3 a/A", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMark)},
		{"missing week", "mark 1 g/TUT04 a/A", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMark)},
		{"missing index", "mark g/TUT04 w/3 a/A", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMark)},
		{"bad index", "mark abc g/TUT04 w/3 a/A", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMark)},
		{"zero index", "mark 0 g/TUT04 w/3 a/A", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMark)},
		{"bad group", "mark 1 g/TUT4 w/3 a/A", shared.ErrParse, group.MessageConstraints},
		{"week zero", "mark 1 g/TUT04 w/0 a/A", shared.ErrParse, group.MessageWeekConstraints},
		{"week fourteen", "mark 1 g/TUT04 w/14 a/A", shared.ErrParse, group.MessageWeekConstraints},
		{"week text", "mark 1 g/TUT04 w/one a/A", shared.ErrParse, group.MessageWeekConstraints},
		{"lowercase mark", "mark 1 g/TUT04 w/3 a/a", shared.ErrParse, group.MessageAttendanceConstraints},
		{"unmarked", "mark 1 g/TUT04 w/3 a/_", shared.ErrParse, group.MessageAttendanceConstraints},
		{"duplicate week", "mark 1 g/TUT04 w/3 w/4 a/A", shared.ErrParse, MessageDuplicateFields + "w/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParseFailure(t, tt.input, tt.kind, tt.message)
		})
	}
}

func TestParseMark_IndexErrorIsWrapped(t *testing.T) {
	_, err := ParseCommand("mark -1 g/TUT04 w/3 a/A")
	assert.True(t, errors.Is(err, shared.ErrInvalidCommandFormat))
	assert.True(t, errors.Is(err, shared.ErrParse), "cause is kept")
}

func TestParseMailTelegram_Failures(t *testing.T) {
	assertParseFailure(t, "mailtg", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMailTG))
	assertParseFailure(t, "mailtg TUT01", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageMailTG))
	assertParseFailure(t, "mailtg g/tut01", shared.ErrParse, group.MessageConstraints)
	assertParseFailure(t, "mailtg g/TUT01 g/TUT02", shared.ErrParse, MessageDuplicateFields+"g/")
}

func TestParseMail_BadKeyword(t *testing.T) {
	assertParseFailure(t, "mail TUT1", shared.ErrParse, group.MessageKeywordConstraints)
}

func TestParseAdd(t *testing.T) {
	cmd, err := ParseCommand("add n/Alice Pauline p/94351253 e/alice@example.com y/2 m/Computer Science " +
		"tg/@alice_p r/likes math g/TUT01 g/LAB02 g/TUT01")
	require.NoError(t, err)

	add, ok := cmd.(command.Add)
	require.True(t, ok)
	p := add.Person
	assert.Equal(t, person.Name("Alice Pauline"), p.Name)
	assert.Equal(t, person.Phone("94351253"), p.Phone)
	assert.Equal(t, person.Email("alice@example.com"), p.Email)
	assert.Equal(t, person.Year("2"), p.Year)
	assert.Equal(t, person.Major("Computer Science"), p.Major)
	assert.Equal(t, person.Telegram("@alice_p"), p.Telegram)
	assert.Equal(t, person.Remark("likes math"), p.Remark)
	assert.Equal(t, []string{"TUT01", "LAB02"}, p.GroupNames())
	assert.Len(t, p.Groups[0].Attendance, group.Weeks)

	cmd, err = ParseCommand("add n/Bob")
	require.NoError(t, err)
	assert.Empty(t, cmd.(command.Add).Person.Groups)
}

func TestParseAdd_Failures(t *testing.T) {
	assertParseFailure(t, "add p/123", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageAdd))
	assertParseFailure(t, "add preamble n/Alice", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageAdd))
	assertParseFailure(t, "add n/Alice n/Bob", shared.ErrParse, MessageDuplicateFields+"n/")
	assertParseFailure(t, "add n/Al*ce", shared.ErrParse, person.MessageNameConstraints)
	assertParseFailure(t, "add n/Alice e/alice", shared.ErrParse, person.MessageEmailConstraints)
	assertParseFailure(t, "add n/Alice y/9", shared.ErrParse, person.MessageYearConstraints)
	assertParseFailure(t, "add n/Alice g/SEM01", shared.ErrParse, group.MessageConstraints)
}

func TestParseEdit(t *testing.T) {
	cmd, err := ParseCommand("edit 2 p/91234567 g/TUT01 g/REC03")
	require.NoError(t, err)

	edit := cmd.(command.Edit)
	assert.Equal(t, command.Index(2), edit.Index)
	require.NotNil(t, edit.Descriptor.Phone)
	assert.Equal(t, person.Phone("91234567"), *edit.Descriptor.Phone)
	require.NotNil(t, edit.Descriptor.Groups)
	assert.Equal(t, []string{"TUT01", "REC03"}, *edit.Descriptor.Groups)
	assert.Nil(t, edit.Descriptor.Name)

	cmd, err = ParseCommand("edit 1 g/")
	require.NoError(t, err)
	assert.Empty(t, *cmd.(command.Edit).Descriptor.Groups)
}

func TestParseEdit_Failures(t *testing.T) {
	assertParseFailure(t, "edit p/123", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageEdit))
	assertParseFailure(t, "edit 1", shared.ErrParse, command.MessageNotEdited)
	assertParseFailure(t, "edit 1 tg/ab", shared.ErrParse, person.MessageTelegramConstraints)
}

func TestParseDelete_Failures(t *testing.T) {
	assertParseFailure(t, "delete", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageDelete))
	assertParseFailure(t, "delete x", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageDelete))
}

func TestParseFindFilter_Failures(t *testing.T) {
	assertParseFailure(t, "find", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageFind))
	assertParseFailure(t, "filter   ", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageFilter))
	assertParseFailure(t, "filter Alice", shared.ErrParse, group.MessageKeywordConstraints)
}

func TestParseAddGroup(t *testing.T) {
	cmd, err := ParseCommand("addgroup g/LAB05 l/https://t.me/lab05")
	require.NoError(t, err)
	g := cmd.(command.AddGroup).Group
	assert.Equal(t, "LAB05", g.Name)
	assert.Equal(t, "https://t.me/lab05", g.TelegramLink)
	assert.Len(t, g.Attendance, group.Weeks)

	cmd, err = ParseCommand("addgroup g/LAB06")
	require.NoError(t, err)
	assert.Empty(t, cmd.(command.AddGroup).Group.TelegramLink)

	assertParseFailure(t, "addgroup l/https://t.me/x", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageAddGroup))
	assertParseFailure(t, "addgroup g/LAB05 l/t.me/x", shared.ErrParse, group.MessageLinkConstraints)
	assertParseFailure(t, "editgroup g/LAB05", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageEditGroup))
	assertParseFailure(t, "deletegroup", shared.ErrInvalidCommandFormat, invalidFormatMessage(UsageDeleteGroup))
}

func TestSplitCommand(t *testing.T) {
	word, args := SplitCommand("  mark 1 g/TUT04 ")
	assert.Equal(t, "mark", word)
	assert.Equal(t, " 1 g/TUT04", args)

	word, args = SplitCommand("list")
	assert.Equal(t, "list", word)
	assert.Equal(t, "", args)
}

func TestParseUtilities(t *testing.T) {
	idx, err := ParseIndex(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, command.Index(3), idx)

	for _, bad := range []string{"0", "-1", "+1", "a", ""} {
		_, err := ParseIndex(bad)
		assert.True(t, errors.Is(err, shared.ErrParse), bad)
	}

	week, err := ParseWeek("13")
	require.NoError(t, err)
	assert.Equal(t, 13, week)

	names, err := ParseGroupNames([]string{"TUT01", " LAB02 ", "TUT01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TUT01", "LAB02"}, names)
}
