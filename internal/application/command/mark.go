package command

import (
	"context"

	"github.com/tutorscontactpro/contacts/internal/application/model"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

const (
	// MessageMarkSuccess is the feedback of a recorded mark.
	MessageMarkSuccess = "Attendance marked"
	// MessageGroupNotInPerson is returned when the person lacks the group.
	MessageGroupNotInPerson = "Group is not found in the person"
	// MessageWeekNumberInvalid is returned for a week outside 1..13.
	MessageWeekNumberInvalid = "Week number is wrong (between 1 and 13)"
)

// MarkAttendance records one week of attendance on a person's own
// membership. The registry record of the group is not touched.
type MarkAttendance struct {
	Index Index
	Group string
	Week  int
	Mark  group.Mark
}

// Execute marks the week on the person shown at Index.
func (c MarkAttendance) Execute(ctx context.Context, m model.Model) (*Result, error) {
	target, err := personAt(m, c.Index, "mark")
	if err != nil {
		return nil, err
	}
	if !target.HasGroup(c.Group) {
		return nil, shared.NewDomainError("command", "mark", shared.ErrEntityNotFound, MessageGroupNotInPerson)
	}

	edited := target.Clone()
	membership, _ := edited.Membership(c.Group)
	if err := membership.MarkAttendance(c.Week, c.Mark); err != nil {
		return nil, shared.WrapError("command", "mark", shared.ErrIndexOutOfRange, MessageWeekNumberInvalid, err)
	}
	if err := m.SetPerson(target, edited); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("attendance marked",
		logger.PersonIndex(int(c.Index)),
		logger.GroupName(c.Group),
		logger.Week(c.Week),
		logger.String("mark", string(c.Mark)))
	return NewResult(MessageMarkSuccess), nil
}
