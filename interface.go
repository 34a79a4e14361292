package xmlrs

import (
	"errors"
	"io"
)

const Version = "0.9.0"

var (
	ErrDocumentStarted = errors.New("document already started")
	ErrNoOpenElement   = errors.New("no open element")
	ErrNotInStartTag   = errors.New("attribute must be written before element content")
	ErrInvalidComment  = errors.New("comment must not contain '--' or end with '-'")
	ErrInvalidPITarget = errors.New("processing instruction target is reserved")
)

type ErrInvalidName struct {
	Name string
}

type ErrUnsupportedEncoding struct {
	Name string
}

// frame tracks one open element on the writer's stack
type frame struct {
	name     string
	hasChild bool
}

// Writer emits an XML document to an io.Writer, one event at a time.
// Attribute values and character data are passed through the escape
// package before being written; the mapping given via WithExtraEscapes
// is applied on top of the mandatory XML set.
type Writer struct {
	out     io.Writer
	closer  io.Closer
	extra   map[rune]string
	indent  string
	version string
	encname string
	stack   []frame
	inTag   bool
	started bool
}
