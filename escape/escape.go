// Package escape performs XML special character escaping for attribute
// values and PCDATA content.
package escape

import "strings"

const (
	escLt   = "&lt;"
	escGt   = "&gt;"
	escQuot = "&quot;"
	escApos = "&apos;"
	escAmp  = "&amp;"
	escNl   = "&#xA;"
	escCr   = "&#xD;"
)

// Text is the result of one escaping pass. When no substitution was
// required it holds the original input string without having copied it;
// otherwise it holds a freshly built string.
type Text struct {
	s      string
	copied bool
}

func (t Text) String() string {
	return t.s
}

// Copied reports whether a new string was built. When false, String
// returns the input untouched and the pass performed no allocations.
func (t Text) Copied() bool {
	return t.copied
}

type dispatchFunc func(r rune, extra map[rune]string) (string, bool)

func dispatchAttrValue(r rune, extra map[rune]string) (string, bool) {
	switch r {
	case '<':
		return escLt, true
	case '>':
		return escGt, true
	case '"':
		return escQuot, true
	case '\'':
		return escApos, true
	case '&':
		return escAmp, true
	case '\n':
		return escNl, true
	case '\r':
		return escCr, true
	}
	if repl, ok := extra[r]; ok {
		return repl, true
	}
	return "", false
}

func dispatchPCData(r rune, extra map[rune]string) (string, bool) {
	switch r {
	case '<':
		return escLt, true
	case '&':
		return escAmp, true
	}
	if repl, ok := extra[r]; ok {
		return repl, true
	}
	return "", false
}

// accumulator builds the output lazily. Until the first substitution it
// merely tracks the source string; the first substitution copies the
// already-scanned prefix into an owned buffer, and from then on every
// rune goes through the buffer. The transition happens at most once and
// never reverses.
type accumulator struct {
	src      string
	buf      strings.Builder
	modified bool
}

func (a *accumulator) replace(pos int, repl string) {
	if !a.modified {
		a.buf.Grow(len(a.src) + len(repl))
		a.buf.WriteString(a.src[:pos])
		a.modified = true
	}
	a.buf.WriteString(repl)
}

func (a *accumulator) keep(r rune) {
	if a.modified {
		a.buf.WriteRune(r)
	}
}

func (a *accumulator) finish() Text {
	if !a.modified {
		return Text{s: a.src}
	}
	return Text{s: a.buf.String(), copied: true}
}

func escapeString(s string, dispatch dispatchFunc, extra map[rune]string) Text {
	acc := accumulator{src: s}
	for i, r := range s {
		if repl, ok := dispatch(r, extra); ok {
			acc.replace(i, repl)
		} else {
			acc.keep(r)
		}
	}
	return acc.finish()
}

// AttrValue escapes s for use inside an XML attribute value.
//
// The following characters are replaced with entity references:
// '<', '>', '"', '\'', '&', newline, and carriage return. Characters
// present in extra are replaced with their mapped string, except that
// the built-in set above always takes precedence and cannot be
// overridden. A nil extra map is allowed.
//
// No allocation is performed if s contains no escapable characters.
func AttrValue(s string, extra map[rune]string) Text {
	return escapeString(s, dispatchAttrValue, extra)
}

// PCData escapes s for use inside PCDATA content.
//
// Only '<' and '&' are replaced with entity references; the extra map
// is consulted for everything else, built-ins taking precedence. The
// result is safe inside PCDATA sections but NOT inside attribute
// values.
//
// No allocation is performed if s contains no escapable characters.
func PCData(s string, extra map[rune]string) Text {
	return escapeString(s, dispatchPCData, extra)
}
