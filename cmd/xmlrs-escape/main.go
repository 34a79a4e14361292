package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	xmlrs "github.com/4erf/xml-rs"
	"github.com/4erf/xml-rs/escape"
	"github.com/4erf/xml-rs/internal/cliutil"
	"github.com/4erf/xml-rs/internal/debug"
)

type cmdopts struct {
	Attr    bool     `long:"attr" description:"escape for an attribute value instead of PCDATA"`
	Map     []string `long:"map" description:"extra mapping in the form 'c=&entity;' (repeatable)"`
	Trace   bool     `long:"trace" description:"log trace events to stderr"`
	Version bool     `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xmlrs-escape: using xml-rs version %s\n", xmlrs.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xmlrs-escape [options] files ...
	Escape the input so it can be embedded in an XML document.
	--attr    : escape for attribute values (default is PCDATA)
	--map     : extra character mapping, e.g. --map '.=&period;'
	--version : display the version of the XML library used
`)
}

func parseExtra(specs []string) (map[rune]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	extra := make(map[rune]string)
	for _, spec := range specs {
		r, width := utf8.DecodeRuneInString(spec)
		if width == 0 || len(spec) < width+1 || spec[width] != '=' {
			return nil, errors.Errorf("invalid mapping '%s': expected 'c=replacement'", spec)
		}
		extra[r] = spec[width+1:]
	}
	return extra, nil
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	extra, err := parseExtra(opts.Map)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = xmlrs.WithTraceLogger(ctx, logger)
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- errors.Wrapf(err, "failed to open %s", f)
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if c, ok := in.(io.Closer); ok {
			c.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		sctx, span := xmlrs.StartSpan(ctx, "escape")
		var v escape.Text
		if opts.Attr {
			v = escape.AttrValue(string(buf), extra)
		} else {
			v = escape.PCData(string(buf), extra)
		}
		xmlrs.TraceEvent(sctx, "escaped input",
			slog.Int("in_bytes", len(buf)),
			slog.Int("out_bytes", len(v.String())),
			slog.Bool("copied", v.Copied()),
		)
		span.End()

		if debug.Enabled {
			debug.DumpResult(v)
		}

		os.Stdout.WriteString(v.String())
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}
	return 0
}
