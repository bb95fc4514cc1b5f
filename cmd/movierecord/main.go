// Package main provides the CLI entrypoint for movierecord.
//
// movierecord inspects loosely-typed movie records:
//   - -demo runs every accessor against a built-in sample record
//   - -file inspects a JSON or YAML record from disk
//   - -has title:string checks property types (repeatable)
//   - -dump prints the decoded record structure
//   - -strict exits non-zero when any accessor reported a diagnostic
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"movierecord/internal/diagnostic"
	"movierecord/movie"
	"movierecord/record"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	demo     bool
	file     string
	dump     bool
	print    string
	logLevel slog.Level
	cutoff   int
	strict   bool
	checks   []typeCheck
}

type typeCheck struct {
	property string
	typeName string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintf(stderr, "movierecord: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: opts.logLevel}))
	var diags diagnostic.Diagnostics

	in := movie.NewInspector(
		movie.WithSink(diagnostic.Tee(diagnostic.SlogSink{Logger: logger}, &diags)),
		movie.WithClassicCutoff(opts.cutoff),
	)

	var r *record.Record

	switch {
	case opts.file != "":
		r, err = record.LoadFile(opts.file)
		if err != nil {
			fmt.Fprintf(stderr, "movierecord: %v\n", err)
			return exitError
		}

		logger.Debug("record loaded", "file", opts.file, "properties", r.Len())
	case opts.demo:
		r = movie.Sample()
	default:
		fmt.Fprintln(stderr, "movierecord: nothing to do, pass -demo or -file")
		return exitUsage
	}

	if opts.dump {
		spew.Fdump(stdout, r)
	}

	if opts.print != "" {
		if err := printRecord(stdout, r, opts.print); err != nil {
			fmt.Fprintf(stderr, "movierecord: %v\n", err)
			return exitError
		}
	}

	report(stdout, in, r, opts.checks, &diags)

	if opts.strict {
		if err := diags.Error(); err != nil {
			fmt.Fprintf(stderr, "movierecord: %v\n", err)
			return exitError
		}
	}

	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{logLevel: slog.LevelWarn}

	fs := flag.NewFlagSet("movierecord", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.demo, "demo", false, "inspect the built-in sample record")
	fs.StringVar(&opts.file, "file", "", "inspect a record from a .json, .yaml or .yml file")
	fs.BoolVar(&opts.dump, "dump", false, "dump the decoded record structure")
	fs.StringVar(&opts.print, "print", "", "print the record as json or yaml")
	fs.BoolVar(&opts.strict, "strict", false, "exit with status 1 when any diagnostic was reported")
	fs.IntVar(&opts.cutoff, "cutoff", movie.DefaultClassicCutoff, "first year that is no longer classic")
	fs.TextVar(&opts.logLevel, "log-level", slog.LevelWarn, "diagnostic log level: debug, info, warn or error")
	fs.Func("has", "check a property type as `key:type`, e.g. title:string (repeatable)", func(s string) error {
		property, typeName, ok := strings.Cut(s, ":")
		if !ok || property == "" || typeName == "" {
			return fmt.Errorf("expected key:type, got %q", s)
		}

		opts.checks = append(opts.checks, typeCheck{property: property, typeName: typeName})

		return nil
	})

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return opts, nil
}

func printRecord(w io.Writer, r *record.Record, format string) error {
	var (
		data []byte
		err  error
	)

	switch record.Format(strings.ToLower(format)) {
	case record.FormatJSON:
		data, err = json.MarshalIndent(r, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case record.FormatYAML:
		data, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("%w: %q", record.ErrUnsupportedFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to print record: %w", err)
	}

	_, err = w.Write(data)

	return err
}

func report(w io.Writer, in *movie.Inspector, r *record.Record, checks []typeCheck, diags *diagnostic.Diagnostics) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "isValidRecord\t%t\n", in.IsValidRecord(r))
	fmt.Fprintf(tw, "title\t%q\n", in.Title(r))
	fmt.Fprintf(tw, "year\t%d\n", in.Year(r))
	fmt.Fprintf(tw, "isClassic\t%t\n", in.IsClassic(r))
	fmt.Fprintf(tw, "keys\t%s\n", strings.Join(in.ListKeys(r), ", "))
	fmt.Fprintf(tw, "properties\t%d\n", in.CountProperties(r))

	for _, c := range checks {
		fmt.Fprintf(tw, "has %s:%s\t%t\n", c.property, c.typeName, in.HasPropertyOfType(r, c.property, c.typeName))
	}

	fmt.Fprintf(tw, "diagnostics\t%d\n", diags.Len())

	_ = tw.Flush()
}
