package escape_test

import (
	"testing"

	"github.com/4erf/xml-rs/escape"
	"github.com/stretchr/testify/assert"
)

func TestAttrValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: `<foo>`, expected: `&lt;foo&gt;`},
		{input: `"quoted"`, expected: `&quot;quoted&quot;`},
		{input: `it's`, expected: `it&apos;s`},
		{input: `fish & chips`, expected: `fish &amp; chips`},
		{input: "line1\nline2", expected: `line1&#xA;line2`},
		{input: "line1\r\nline2", expected: `line1&#xD;&#xA;line2`},
		{input: `plain text`, expected: `plain text`},
		{input: ``, expected: ``},
	}

	for _, tc := range tests {
		v := escape.AttrValue(tc.input, nil)
		if !assert.Equal(t, tc.expected, v.String(), "AttrValue(%q) matches", tc.input) {
			return
		}
	}
}

func TestPCData(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: `<foo>`, expected: `&lt;foo>`},
		{input: `fish & chips`, expected: `fish &amp; chips`},
		{input: `a>b`, expected: `a>b`},
		{input: `"quoted"`, expected: `"quoted"`},
		{input: "line1\nline2", expected: "line1\nline2"},
		{input: `plain text`, expected: `plain text`},
	}

	for _, tc := range tests {
		v := escape.PCData(tc.input, nil)
		if !assert.Equal(t, tc.expected, v.String(), "PCData(%q) matches", tc.input) {
			return
		}
	}
}

func TestMultibyteCodePoints(t *testing.T) {
	if !assert.Equal(t, "☃&lt;", escape.AttrValue("☃<", nil).String(), "attribute value matches") {
		return
	}

	if !assert.Equal(t, "☃&lt;", escape.PCData("☃<", nil).String(), "pcdata matches") {
		return
	}

	extra := map[rune]string{'.': "&period;"}
	if !assert.Equal(t, "☃&lt;&period;", escape.AttrValue("☃<.", extra).String(), "attribute value with extra mapping matches") {
		return
	}

	if !assert.Equal(t, "☃&lt;&period;", escape.PCData("☃<.", extra).String(), "pcdata with extra mapping matches") {
		return
	}
}

func TestMultibyteKeepAfterCopy(t *testing.T) {
	// the owned buffer must carry multi-byte runes whole once the
	// first substitution has forced a copy
	v := escape.PCData("a<日本語", nil)
	if !assert.Equal(t, "a&lt;日本語", v.String(), "runes after the substitution survive intact") {
		return
	}

	if !assert.True(t, v.Copied(), "a copy was made") {
		return
	}
}

func TestExtraMapping(t *testing.T) {
	extra := map[rune]string{
		'.': "&period;",
		'☃': "&snowman;",
	}

	v := escape.PCData("a.b☃c", extra)
	if !assert.Equal(t, "a&period;b&snowman;c", v.String(), "extra mappings apply") {
		return
	}
}

func TestBuiltinsTakePrecedence(t *testing.T) {
	extra := map[rune]string{
		'<': "&custom;",
		'&': "&custom;",
	}

	if !assert.Equal(t, "&lt;", escape.PCData("<", extra).String(), "built-in wins over extra for '<'") {
		return
	}

	if !assert.Equal(t, "&amp;", escape.AttrValue("&", extra).String(), "built-in wins over extra for '&'") {
		return
	}
}

func TestContextDifference(t *testing.T) {
	if !assert.Equal(t, "a&gt;b", escape.AttrValue("a>b", nil).String(), "'>' escaped in attribute values") {
		return
	}

	if !assert.Equal(t, "a>b", escape.PCData("a>b", nil).String(), "'>' passed through in pcdata") {
		return
	}
}

func TestNotIdempotent(t *testing.T) {
	once := escape.PCData("&", nil)
	twice := escape.PCData(once.String(), nil)
	if !assert.Equal(t, "&amp;amp;", twice.String(), "re-escaping escapes the ampersand again") {
		return
	}
}

func TestNoCopyWhenClean(t *testing.T) {
	const input = `plain text`
	v := escape.AttrValue(input, nil)
	if !assert.Equal(t, input, v.String(), "content unchanged") {
		return
	}

	if !assert.False(t, v.Copied(), "no copy was made") {
		return
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = escape.AttrValue(input, nil)
	})
	if !assert.Equal(t, float64(0), allocs, "clean input allocates nothing") {
		return
	}
}

func TestCopiedFlag(t *testing.T) {
	v := escape.AttrValue(`a<b`, nil)
	if !assert.True(t, v.Copied(), "escaped input reports a copy") {
		return
	}

	v = escape.PCData(`a<b`, map[rune]string{})
	if !assert.True(t, v.Copied(), "empty extra map does not change the outcome") {
		return
	}
}

func BenchmarkAttrValueClean(b *testing.B) {
	const input = `a perfectly ordinary attribute value with no markup`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = escape.AttrValue(input, nil)
	}
}

func BenchmarkAttrValueEscaped(b *testing.B) {
	const input = `<a href="http://example.com/?q=1&p=2">`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = escape.AttrValue(input, nil)
	}
}
