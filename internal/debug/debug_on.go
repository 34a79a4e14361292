//go:build debug

package debug

import (
	"log"
	"os"

	"github.com/4erf/xml-rs/escape"
	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|xmlrs| ", 0)

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// DumpResult reports the outcome of one escaping pass and dumps the
// produced text using go-spew
func DumpResult(v escape.Text) {
	logger.Printf("copied=%t out_bytes=%d", v.Copied(), len(v.String()))
	spew.Dump(v.String())
}
