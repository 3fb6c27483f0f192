// Package parser turns raw command lines into executable commands.
package parser

import (
	"sort"
	"strings"

	"github.com/tutorscontactpro/contacts/internal/domain/shared"
)

// Prefix marks the start of an argument value, e.g. "n/".
type Prefix string

// Recognised prefixes.
const (
	PrefixName       Prefix = "n/"
	PrefixPhone      Prefix = "p/"
	PrefixEmail      Prefix = "e/"
	PrefixYear       Prefix = "y/"
	PrefixMajor      Prefix = "m/"
	PrefixTelegram   Prefix = "tg/"
	PrefixRemark     Prefix = "r/"
	PrefixGroup      Prefix = "g/"
	PrefixWeek       Prefix = "w/"
	PrefixAttendance Prefix = "a/"
	PrefixLink       Prefix = "l/"
)

// MessageDuplicateFields prefixes the list of repeated single-valued prefixes.
const MessageDuplicateFields = "Multiple values specified for the following single-valued field(s): "

// ══════════════════════════════════════════════════════════════════════════════
// ARGUMENT MULTIMAP
// ══════════════════════════════════════════════════════════════════════════════

// ArgumentMultimap holds the preamble and, per prefix, every value in order
// of appearance.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first prefix.
func (a *ArgumentMultimap) Preamble() string {
	return a.preamble
}

// Value returns the last value given for p.
func (a *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p. The slice is a copy.
func (a *ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// ArePrefixesPresent reports whether every prefix has at least one value.
func (a *ArgumentMultimap) ArePrefixesPresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(a.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixes fails with ErrParse naming every prefix from the
// list that was given more than once.
func (a *ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var dups []string
	seen := make(map[Prefix]bool)
	for _, p := range prefixes {
		if seen[p] {
			continue
		}
		seen[p] = true
		if len(a.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return shared.NewDomainError("parser", "VerifyNoDuplicatePrefixes", shared.ErrParse,
		MessageDuplicateFields+strings.Join(dups, " "))
}

// ══════════════════════════════════════════════════════════════════════════════
// TOKENIZER
// ══════════════════════════════════════════════════════════════════════════════

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix only
// counts when it is preceded by whitespace, so args normally start with the
// space that followed the command word. Values and the preamble are trimmed.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})

	am := &ArgumentMultimap{values: make(map[Prefix][]string)}

	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	am.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		am.values[pos.prefix] = append(am.values[pos.prefix], value)
	}
	return am
}

// findPrefixPositions returns the offsets at which p starts, counting only
// occurrences preceded by whitespace.
func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			return out
		}
		at := from + i
		if at > 0 && isSpace(args[at-1]) {
			out = append(out, prefixPosition{prefix: p, start: at})
		}
		from = at + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
