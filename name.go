package xmlrs

import (
	"strings"
	"unicode"

	"github.com/lestrrat-go/strcursor"
)

func isNameStartChar(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return r == '.' || r == '-' || r == '_' || r == ':' ||
		unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Extender)
}

// checkName verifies that name is usable as an element, attribute, or
// processing instruction name.
//
// [4] NameStartChar ::= ":" | [A-Z] | "_" | [a-z] | ...
// [4a] NameChar ::= NameStartChar | "-" | "." | [0-9] | ...
func checkName(name string) error {
	if name == "" {
		return ErrInvalidName{Name: name}
	}

	cur := strcursor.NewRuneCursor(strings.NewReader(name))
	if !isNameStartChar(cur.Peek()) {
		return ErrInvalidName{Name: name}
	}
	if err := cur.Advance(1); err != nil {
		return ErrInvalidName{Name: name}
	}

	for !cur.Done() {
		if !isNameChar(cur.Peek()) {
			return ErrInvalidName{Name: name}
		}
		if err := cur.Advance(1); err != nil {
			return ErrInvalidName{Name: name}
		}
	}
	return nil
}
