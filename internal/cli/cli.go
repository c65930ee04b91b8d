// Package cli implements the medcalc command line: serving the MCP server,
// listing and documenting operations, and one-shot invocations.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/leofalp/medcalc/core/catalog"
	"github.com/leofalp/medcalc/core/invoke"
	"github.com/leofalp/medcalc/core/operation"
	"github.com/leofalp/medcalc/core/parse"
	"github.com/leofalp/medcalc/internal/config"
	"github.com/leofalp/medcalc/internal/mcpserver"
	"github.com/leofalp/medcalc/providers/medical"
	"github.com/leofalp/medcalc/providers/observability"
	"github.com/leofalp/medcalc/providers/observability/promobs"
	"github.com/leofalp/medcalc/providers/observability/slogobs"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const usage = `Usage: medcalc <command> [flags]

Commands:
  serve   [-transport stdio|http] [-http-addr addr] [-log-level level] [-log-format compact|json]
          Run the MCP server.
  list    [-format text|json|yaml|markdown]
          List the registered operations.
  invoke  <operation> [json-arguments]
          Run one operation and print its result.
  docs    Print the Markdown operation reference.
`

// App runs commands against the given streams and environment.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Environ map[string]string
	Version string
}

// Run executes args (without the program name) and returns the exit code.
func (a App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, usage)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "serve":
		err = a.serve(ctx, rest)
	case "list":
		err = a.list(rest)
	case "invoke":
		err = a.invoke(ctx, rest)
	case "docs":
		err = a.docs(rest)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.Stdout, usage)
		return ExitOK
	default:
		fmt.Fprintf(a.Stderr, "unknown command %q\n\n%s", cmd, usage)
		return ExitUsage
	}

	var usageErr usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.As(err, &usageErr):
		fmt.Fprintf(a.Stderr, "medcalc: %v\n\n%s", err, usage)
		return ExitUsage
	default:
		fmt.Fprintf(a.Stderr, "medcalc: %v\n", err)
		return ExitFailure
	}
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func (a App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

// parseFlags reports bad flags as usage errors; -h passes through.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{msg: err.Error()}
	}
	return nil
}

// registry builds the operation registry. A duplicate or malformed entry
// aborts startup.
func registry() (*operation.Registry, error) {
	r, err := medical.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return r, nil
}

func (a App) serve(ctx context.Context, args []string) error {
	cfg, err := config.Load(a.Environ)
	if err != nil {
		return err
	}
	if err := cfg.ParseFlags(a.flagSet("serve"), args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{msg: err.Error()}
	}

	level, _ := slogobs.ParseLevel(cfg.LogLevel)
	format, _ := slogobs.ParseFormat(cfg.LogFormat)
	logs := slogobs.New(
		slogobs.WithFormat(format),
		slogobs.WithLevel(level),
		slogobs.WithOutput(a.Stderr),
	)
	metrics := promobs.NewRegistry()
	metrics.SetHelp(observability.MetricInvocations, "Operation invocations by operation and outcome.")
	metrics.SetHelp(observability.MetricInvocationDuration, "Operation invocation latency in seconds.")
	observer := observability.Combine(logs, metrics, logs)

	r, err := registry()
	if err != nil {
		return err
	}
	server := mcpserver.New(
		invoke.New(r, invoke.WithObserver(observer)),
		mcpserver.WithVersion(a.Version),
		mcpserver.WithObserver(observer),
		mcpserver.WithMetricsHandler(metrics.Handler()),
	)
	return server.Run(ctx, cfg)
}

func (a App) list(args []string) error {
	fs := a.flagSet("list")
	formatName := fs.String("format", string(catalog.FormatText), "Output format: text, json, yaml or markdown")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	format, err := catalog.ParseFormat(*formatName)
	if err != nil {
		return usageError{msg: err.Error()}
	}
	return a.writeCatalog(format)
}

func (a App) docs(args []string) error {
	if err := parseFlags(a.flagSet("docs"), args); err != nil {
		return err
	}
	return a.writeCatalog(catalog.FormatMarkdown)
}

func (a App) writeCatalog(format catalog.Format) error {
	r, err := registry()
	if err != nil {
		return err
	}
	descriptors, err := catalog.Describe(r, medical.Notes)
	if err != nil {
		return err
	}
	return catalog.Write(a.Stdout, format, descriptors)
}

func (a App) invoke(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError{msg: "invoke requires an operation name"}
	}
	name := args[0]
	arguments, err := parse.DecodeArguments([]byte(strings.Join(args[1:], " ")))
	if err != nil {
		return err
	}

	r, err := registry()
	if err != nil {
		return err
	}
	res := invoke.New(r).Invoke(ctx, invoke.Request{Operation: name, Arguments: arguments})
	if !res.Ok() {
		return res.Err
	}
	fmt.Fprintln(a.Stdout, mcpserver.FormatNumber(res.Value))
	return nil
}
