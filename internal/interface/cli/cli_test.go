package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorscontactpro/contacts/internal/application/logic"
	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/application/parser"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/testutil"
)

func newREPL(input string) (*REPL, *bytes.Buffer) {
	var out bytes.Buffer
	exec := logic.NewManager(model.NewManager(testutil.TypicalAddressBook()), nil, nil)
	return NewREPL(exec, strings.NewReader(input), &out, nil), &out
}

func TestREPL_RunUntilExit(t *testing.T) {
	r, out := newREPL("list\n\nhelp\nexit\nlist\n")

	require.NoError(t, r.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Listed all persons")
	assert.Contains(t, text, parser.HelpText)
	assert.Contains(t, text, "Exiting Address Book as requested ...")
	assert.Equal(t, 2, strings.Count(text, "Listed all persons")+strings.Count(text, "Opened help window."))
}

func TestREPL_RunEndsAtEOF(t *testing.T) {
	r, out := newREPL("find Meier")

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "2 persons listed!")
}

func TestREPL_HandleShowsErrorMessage(t *testing.T) {
	r, out := newREPL("")

	exit := r.Handle(context.Background(), "delete 0")
	assert.False(t, exit)
	assert.Contains(t, out.String(), "Invalid command format!")
}

func TestREPL_HandleMail(t *testing.T) {
	r, out := newREPL("")

	r.Handle(context.Background(), "mail TUT01")
	assert.Contains(t, out.String(), "Mailto link: mailto:alice@example.com;johnd@example.com;cornelia@example.com")
}

func TestREPL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, _ := newREPL("list\n")

	assert.NoError(t, r.Run(ctx))
}

func TestListPresenter_Render(t *testing.T) {
	text := NewListPresenter().Render(testutil.TypicalPersons())

	assert.True(t, strings.HasPrefix(text, "── All ──\n1. Alice Pauline\n"))
	assert.Contains(t, text, "── TUT01 ──\n1. Alice Pauline")
	assert.Contains(t, text, "── LAB02 ──\n1. Carl Kurz")
	assert.Less(t, strings.Index(text, "── TUT01 ──"), strings.Index(text, "── LAB02 ──"))
	assert.NotContains(t, text, "── REC03 ──")
}

func TestListPresenter_RenderEmpty(t *testing.T) {
	assert.Equal(t, "── All ──\n  (no persons)\n", NewListPresenter().Render(nil))
}

func TestListPresenter_FormatCard(t *testing.T) {
	p := testutil.NewPersonBuilder().WithName("Amy Bee").WithRemark("").
		WithGroups("TUT04").WithAttendance("TUT04", "P", "A").Build()

	card := NewListPresenter().FormatCard(p, 3)
	assert.Contains(t, card, "3. Amy Bee\n")
	assert.Contains(t, card, "   Email:    amy@gmail.com\n")
	assert.Contains(t, card, "   [TUT04] W1:P W2:A\n")
	assert.NotContains(t, card, "Remark")
}

func TestFormatAttendance(t *testing.T) {
	a := group.NewAttendance()
	require.NoError(t, a.Mark(2, group.Absent))
	assert.True(t, strings.HasPrefix(FormatAttendance(a), "W1:_ W2:A W3:_"))
}
