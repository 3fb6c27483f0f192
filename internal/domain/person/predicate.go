package person

import (
	"strings"

	"golang.org/x/text/cases"
)

// Predicate selects persons for the filtered list and for mail recipients.
type Predicate interface {
	Test(p *Person) bool
}

// AllPersons matches every person.
type AllPersons struct{}

// Test always returns true.
func (AllPersons) Test(*Person) bool { return true }

// NameContainsKeywords matches persons whose name has a word equal to any
// keyword, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

// Test implements Predicate.
func (k NameContainsKeywords) Test(p *Person) bool {
	words := strings.Fields(string(p.Name))
	for _, kw := range k.Keywords {
		for _, w := range words {
			if equalFold(kw, w) {
				return true
			}
		}
	}
	return false
}

// GroupContainsKeywords matches persons belonging to a group whose name equals
// any keyword, ignoring case.
type GroupContainsKeywords struct {
	Keywords []string
}

// Test implements Predicate.
func (k GroupContainsKeywords) Test(p *Person) bool {
	for _, kw := range k.Keywords {
		for _, m := range p.Groups {
			if equalFold(kw, m.Name) {
				return true
			}
		}
	}
	return false
}

// equalFold compares under Unicode case folding. A Caser is not safe for
// concurrent use, so each call builds its own.
func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
