//go:build !debug

package debug

import "github.com/4erf/xml-rs/escape"

const Enabled = false

// Printf is no op unless you compile with the `debug` tag
func Printf(f string, args ...interface{}) {}

// DumpResult is no op unless you compile with the `debug` tag
func DumpResult(v escape.Text) {}
