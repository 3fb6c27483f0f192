package parser

import (
	"strings"

	"github.com/tutorscontactpro/contacts/internal/application/command"
	"github.com/tutorscontactpro/contacts/internal/domain/group"
	"github.com/tutorscontactpro/contacts/internal/domain/person"
)

var personPrefixes = []Prefix{
	PrefixName, PrefixPhone, PrefixEmail, PrefixYear,
	PrefixMajor, PrefixTelegram, PrefixRemark, PrefixGroup,
}

// singleValued are the person prefixes that may appear at most once.
var singleValued = personPrefixes[:len(personPrefixes)-1]

// ══════════════════════════════════════════════════════════════════════════════
// PERSON COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func parseAdd(args string) (command.Command, error) {
	am := Tokenize(args, personPrefixes...)
	if !am.ArePrefixesPresent(PrefixName) || am.Preamble() != "" {
		return nil, invalidFormat("parseAdd", UsageAdd)
	}
	if err := am.VerifyNoDuplicatePrefixes(singleValued...); err != nil {
		return nil, err
	}

	value := func(p Prefix) string {
		v, _ := am.Value(p)
		return v
	}
	params := person.Params{
		Name:     value(PrefixName),
		Phone:    value(PrefixPhone),
		Email:    value(PrefixEmail),
		Year:     value(PrefixYear),
		Major:    value(PrefixMajor),
		Telegram: value(PrefixTelegram),
		Remark:   value(PrefixRemark),
	}

	names, err := ParseGroupNames(am.AllValues(PrefixGroup))
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		m, err := group.NewMembership(name)
		if err != nil {
			return nil, asParseError("parseAdd", err)
		}
		params.Groups = append(params.Groups, m)
	}

	p, err := person.New(params)
	if err != nil {
		return nil, asParseError("parseAdd", err)
	}
	return command.Add{Person: p}, nil
}

func parseEdit(args string) (command.Command, error) {
	am := Tokenize(args, personPrefixes...)
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, wrapInvalidFormat("parseEdit", UsageEdit, err)
	}
	if err := am.VerifyNoDuplicatePrefixes(singleValued...); err != nil {
		return nil, err
	}

	var d command.EditDescriptor
	if v, ok := am.Value(PrefixName); ok {
		n, err := ParseName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &n
	}
	if v, ok := am.Value(PrefixPhone); ok {
		p, err := ParsePhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &p
	}
	if v, ok := am.Value(PrefixEmail); ok {
		e, err := ParseEmail(v)
		if err != nil {
			return nil, err
		}
		d.Email = &e
	}
	if v, ok := am.Value(PrefixYear); ok {
		y, err := ParseYear(v)
		if err != nil {
			return nil, err
		}
		d.Year = &y
	}
	if v, ok := am.Value(PrefixMajor); ok {
		m, err := ParseMajor(v)
		if err != nil {
			return nil, err
		}
		d.Major = &m
	}
	if v, ok := am.Value(PrefixTelegram); ok {
		t, err := ParseTelegram(v)
		if err != nil {
			return nil, err
		}
		d.Telegram = &t
	}
	if v, ok := am.Value(PrefixRemark); ok {
		r := person.NewRemark(v)
		d.Remark = &r
	}
	if values := am.AllValues(PrefixGroup); len(values) > 0 {
		// A single empty g/ clears every membership.
		names := []string{}
		if !(len(values) == 1 && values[0] == "") {
			if names, err = ParseGroupNames(values); err != nil {
				return nil, err
			}
		}
		d.Groups = &names
	}

	if !d.IsAnyFieldEdited() {
		return nil, parseError("parseEdit", command.MessageNotEdited)
	}
	return command.Edit{Index: idx, Descriptor: d}, nil
}

func parseDelete(args string) (command.Command, error) {
	idx, err := ParseIndex(args)
	if err != nil {
		return nil, wrapInvalidFormat("parseDelete", UsageDelete, err)
	}
	return command.Delete{Index: idx}, nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat("parseFind", UsageFind)
	}
	return command.Find{Predicate: person.NameContainsKeywords{Keywords: keywords}}, nil
}

func parseFilter(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat("parseFilter", UsageFilter)
	}
	for _, kw := range keywords {
		if _, err := ParseGroupKeyword(kw); err != nil {
			return nil, err
		}
	}
	return command.Filter{Predicate: person.GroupContainsKeywords{Keywords: keywords}}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// GROUP COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func parseAddGroup(args string) (command.Command, error) {
	am := Tokenize(args, PrefixGroup, PrefixLink)
	if !am.ArePrefixesPresent(PrefixGroup) || am.Preamble() != "" {
		return nil, invalidFormat("parseAddGroup", UsageAddGroup)
	}
	if err := am.VerifyNoDuplicatePrefixes(PrefixGroup, PrefixLink); err != nil {
		return nil, err
	}
	rawName, _ := am.Value(PrefixGroup)
	name, err := ParseGroupName(rawName)
	if err != nil {
		return nil, err
	}
	var link string
	if v, ok := am.Value(PrefixLink); ok {
		if link, err = ParseLink(v); err != nil {
			return nil, err
		}
	}
	g, err := group.NewWithLink(name, link)
	if err != nil {
		return nil, asParseError("parseAddGroup", err)
	}
	return command.AddGroup{Group: g}, nil
}

func parseEditGroup(args string) (command.Command, error) {
	am := Tokenize(args, PrefixGroup, PrefixLink)
	if !am.ArePrefixesPresent(PrefixGroup, PrefixLink) || am.Preamble() != "" {
		return nil, invalidFormat("parseEditGroup", UsageEditGroup)
	}
	if err := am.VerifyNoDuplicatePrefixes(PrefixGroup, PrefixLink); err != nil {
		return nil, err
	}
	rawName, _ := am.Value(PrefixGroup)
	name, err := ParseGroupName(rawName)
	if err != nil {
		return nil, err
	}
	rawLink, _ := am.Value(PrefixLink)
	link, err := ParseLink(rawLink)
	if err != nil {
		return nil, err
	}
	return command.EditGroup{Name: name, Link: link}, nil
}

func parseDeleteGroup(args string) (command.Command, error) {
	name, err := parseSingleGroup(args, "parseDeleteGroup", UsageDeleteGroup)
	if err != nil {
		return nil, err
	}
	return command.DeleteGroup{Name: name}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE & MAIL
// ══════════════════════════════════════════════════════════════════════════════

func parseMark(args string) (command.Command, error) {
	am := Tokenize(args, PrefixGroup, PrefixWeek, PrefixAttendance)
	if !am.ArePrefixesPresent(PrefixGroup, PrefixWeek, PrefixAttendance) {
		return nil, invalidFormat("parseMark", UsageMark)
	}
	idx, err := ParseIndex(am.Preamble())
	if err != nil {
		return nil, wrapInvalidFormat("parseMark", UsageMark, err)
	}
	if err := am.VerifyNoDuplicatePrefixes(PrefixGroup, PrefixWeek, PrefixAttendance); err != nil {
		return nil, err
	}

	rawGroup, _ := am.Value(PrefixGroup)
	name, err := ParseGroupName(rawGroup)
	if err != nil {
		return nil, err
	}
	rawWeek, _ := am.Value(PrefixWeek)
	week, err := ParseWeek(rawWeek)
	if err != nil {
		return nil, err
	}
	rawMark, _ := am.Value(PrefixAttendance)
	mark, err := ParseAttendance(rawMark)
	if err != nil {
		return nil, err
	}
	return command.MarkAttendance{Index: idx, Group: name, Week: week, Mark: mark}, nil
}

func parseMail(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return command.Mail{}, nil
	}
	for _, kw := range keywords {
		if _, err := ParseGroupKeyword(kw); err != nil {
			return nil, err
		}
	}
	return command.Mail{Predicate: person.GroupContainsKeywords{Keywords: keywords}}, nil
}

func parseMailTelegram(args string) (command.Command, error) {
	name, err := parseSingleGroup(args, "parseMailTelegram", UsageMailTG)
	if err != nil {
		return nil, err
	}
	return command.MailTelegram{Group: name}, nil
}

// parseSingleGroup handles commands whose only argument is one g/GROUP.
func parseSingleGroup(args, op, usage string) (string, error) {
	am := Tokenize(args, PrefixGroup)
	if !am.ArePrefixesPresent(PrefixGroup) || am.Preamble() != "" {
		return "", invalidFormat(op, usage)
	}
	if err := am.VerifyNoDuplicatePrefixes(PrefixGroup); err != nil {
		return "", err
	}
	raw, _ := am.Value(PrefixGroup)
	return ParseGroupName(raw)
}
