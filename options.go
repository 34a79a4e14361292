package xmlrs

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identExtraEscapes struct{}
type identIndent struct{}
type identVersion struct{}

type WriterOption interface {
	Option
	writerOption()
}

type writerOption struct{ Option }

func (*writerOption) writerOption() {}

// WithEncoding specifies the output encoding of the document. The name
// must be one the encoding package knows; output bytes are transformed
// on the way out and the XML declaration carries the name.
func WithEncoding(v string) WriterOption {
	return &writerOption{option.New(identEncoding{}, v)}
}

// WithExtraEscapes specifies additional character-to-entity mappings
// applied to attribute values and character data. The built-in XML
// escapes always take precedence over this mapping.
func WithExtraEscapes(v map[rune]string) WriterOption {
	return &writerOption{option.New(identExtraEscapes{}, v)}
}

// WithIndent enables pretty printing, indenting each nesting level
// with the given string.
func WithIndent(v string) WriterOption {
	return &writerOption{option.New(identIndent{}, v)}
}

// WithVersion specifies the XML version written in the declaration
func WithVersion(v string) WriterOption {
	return &writerOption{option.New(identVersion{}, v)}
}
