// Package encoding maps XML encoding declaration names onto the
// encodings provided by golang.org/x/text. It exists partly because
// the x/text package names ("unicode", etc.) clash with the stdlib,
// and partly to give the rest of the module one place that knows how
// encoding names are spelled.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var registry = map[string]enc.Encoding{
	"utf-8":        unicode.UTF8,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"euc-jp":       japanese.EUCJP,
	"shift_jis":    japanese.ShiftJIS,
	"iso-2022-jp":  japanese.ISO2022JP,
	"euc-kr":       korean.EUCKR,
	"big5":         traditionalchinese.Big5,
	"gbk":          simplifiedchinese.GBK,
	"gb18030":      simplifiedchinese.GB18030,
	"hz-gb2312":    simplifiedchinese.HZGB2312,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-2":   charmap.ISO8859_2,
	"iso-8859-3":   charmap.ISO8859_3,
	"iso-8859-4":   charmap.ISO8859_4,
	"iso-8859-5":   charmap.ISO8859_5,
	"iso-8859-6":   charmap.ISO8859_6,
	"iso-8859-7":   charmap.ISO8859_7,
	"iso-8859-8":   charmap.ISO8859_8,
	"iso-8859-9":   charmap.ISO8859_9,
	"iso-8859-10":  charmap.ISO8859_10,
	"iso-8859-13":  charmap.ISO8859_13,
	"iso-8859-14":  charmap.ISO8859_14,
	"iso-8859-15":  charmap.ISO8859_15,
	"iso-8859-16":  charmap.ISO8859_16,
	"koi8-r":       charmap.KOI8R,
	"koi8-u":       charmap.KOI8U,
	"macintosh":    charmap.Macintosh,
	"windows-874":  charmap.Windows874,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"cp437":        charmap.CodePage437,
	"cp866":        charmap.CodePage866,
}

var aliases = map[string]string{
	"utf8":      "utf-8",
	"utf16":     "utf-16",
	"shift-jis": "shift_jis",
	"shiftjis":  "shift_jis",
	"cp932":     "shift_jis",
	"jis":       "iso-2022-jp",
	"latin1":    "iso-8859-1",
	"koi8r":     "koi8-r",
	"koi8u":     "koi8-u",
}

// Canonical returns the canonical spelling of an encoding name, or the
// lowercased input if no alias is registered for it.
func Canonical(name string) string {
	name = strings.ToLower(name)
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// Load returns the encoding registered under name, resolving aliases
// and ignoring case. It returns nil when the name is unknown.
func Load(name string) enc.Encoding {
	return registry[Canonical(name)]
}
