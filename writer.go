package xmlrs

import (
	"io"
	"strings"

	"github.com/4erf/xml-rs/encoding"
	"github.com/4erf/xml-rs/escape"
	"github.com/lestrrat-go/pdebug"
)

// NewWriter creates a Writer emitting to out. When WithEncoding is
// given, output is transformed to that encoding as it is written and
// EndDocument must be called to flush the transformer.
func NewWriter(out io.Writer, options ...WriterOption) (*Writer, error) {
	w := &Writer{out: out, version: "1.0"}
	for _, option := range options {
		switch option.Ident() {
		case identEncoding{}:
			w.encname = option.Value().(string)
		case identExtraEscapes{}:
			w.extra = option.Value().(map[rune]string)
		case identIndent{}:
			w.indent = option.Value().(string)
		case identVersion{}:
			w.version = option.Value().(string)
		}
	}

	if w.encname != "" {
		enc := encoding.Load(w.encname)
		if enc == nil {
			return nil, ErrUnsupportedEncoding{Name: w.encname}
		}
		w.encname = encoding.Canonical(w.encname)
		ew := enc.NewEncoder().Writer(out)
		w.out = ew
		if c, ok := ew.(io.Closer); ok {
			w.closer = c
		}
	}
	return w, nil
}

func (w *Writer) writeString(content string) error {
	_, err := io.WriteString(w.out, content)
	return err
}

// StartDocument writes the XML declaration. It may be skipped entirely
// for fragment output, but calling it after any other event is an
// error.
func (w *Writer) StartDocument() error {
	if w.started {
		return ErrDocumentStarted
	}
	w.started = true

	if err := w.writeString(`<?xml version="` + w.version + `"`); err != nil {
		return err
	}
	if w.encname != "" {
		if err := w.writeString(` encoding="` + w.encname + `"`); err != nil {
			return err
		}
	}
	return w.writeString("?>\n")
}

// closeStartTag terminates a pending start tag before content is
// written into the element
func (w *Writer) closeStartTag() error {
	if !w.inTag {
		return nil
	}
	w.inTag = false
	return w.writeString(">")
}

func (w *Writer) writeIndent(depth int) error {
	if w.indent == "" {
		return nil
	}
	return w.writeString("\n" + strings.Repeat(w.indent, depth))
}

func (w *Writer) StartElement(name string) error {
	if pdebug.Enabled {
		g := pdebug.Marker("Writer.StartElement %s", name)
		defer g.End()
	}

	if err := checkName(name); err != nil {
		return err
	}
	if err := w.closeStartTag(); err != nil {
		return err
	}
	w.started = true

	if len(w.stack) > 0 {
		w.stack[len(w.stack)-1].hasChild = true
		if err := w.writeIndent(len(w.stack)); err != nil {
			return err
		}
	}

	if err := w.writeString("<" + name); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{name: name})
	w.inTag = true
	return nil
}

// WriteAttribute writes name="value" into the currently open start
// tag. The value goes through attribute-value escaping, so quotes,
// markup characters and line breaks are always safe.
func (w *Writer) WriteAttribute(name, value string) error {
	if !w.inTag {
		return ErrNotInStartTag
	}
	if err := checkName(name); err != nil {
		return err
	}

	v := escape.AttrValue(value, w.extra)
	return w.writeString(` ` + name + `="` + v.String() + `"`)
}

// WriteText writes character data into the current element, escaped
// for PCDATA.
func (w *Writer) WriteText(content string) error {
	if pdebug.Enabled {
		g := pdebug.Marker("Writer.WriteText")
		defer g.End()
	}

	if len(w.stack) == 0 {
		return ErrNoOpenElement
	}
	if err := w.closeStartTag(); err != nil {
		return err
	}

	return w.writeString(escape.PCData(content, w.extra).String())
}

// WriteComment writes an XML comment. The content is emitted verbatim;
// XML forbids '--' inside comments and a trailing '-', so those are
// rejected rather than escaped.
func (w *Writer) WriteComment(content string) error {
	if strings.Contains(content, "--") || strings.HasSuffix(content, "-") {
		return ErrInvalidComment
	}
	if err := w.closeStartTag(); err != nil {
		return err
	}
	w.started = true

	return w.writeString("<!--" + content + "-->")
}

// WritePI writes a processing instruction. The target "xml" (in any
// case) is reserved for the declaration.
func (w *Writer) WritePI(target, data string) error {
	if err := checkName(target); err != nil {
		return err
	}
	if strings.EqualFold(target, "xml") {
		return ErrInvalidPITarget
	}
	if err := w.closeStartTag(); err != nil {
		return err
	}
	w.started = true

	if data == "" {
		return w.writeString("<?" + target + "?>")
	}
	return w.writeString("<?" + target + " " + data + "?>")
}

func (w *Writer) EndElement() error {
	if pdebug.Enabled {
		g := pdebug.Marker("Writer.EndElement")
		defer g.End()
	}

	if len(w.stack) == 0 {
		return ErrNoOpenElement
	}
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if w.inTag {
		w.inTag = false
		return w.writeString("/>")
	}

	if top.hasChild {
		if err := w.writeIndent(len(w.stack)); err != nil {
			return err
		}
	}
	return w.writeString("</" + top.name + ">")
}

// EndDocument closes any elements left open and flushes the output
// encoder, if one is configured.
func (w *Writer) EndDocument() error {
	for len(w.stack) > 0 {
		if err := w.EndElement(); err != nil {
			return err
		}
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
