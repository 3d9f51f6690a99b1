// Package cli implements the saiscope command line: trace, comments,
// scripts, explain and types.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/AaronLay10/SaiScope/internal/analyzer"
	"github.com/AaronLay10/SaiScope/internal/app"
	"github.com/AaronLay10/SaiScope/internal/config"
	"github.com/AaronLay10/SaiScope/internal/definitions"
	"github.com/AaronLay10/SaiScope/internal/events"
	"github.com/AaronLay10/SaiScope/internal/smartai"
	"github.com/AaronLay10/SaiScope/internal/version"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...interface{}) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

const usage = `
SaiScope - static analysis of SmartAI scripts.

Usage:
  saiscope [global options] <command> [options]

Commands:
  trace     follow the chain started by one row
  comments  generate comments for every row of a script
  scripts   list the rows of a script by name
  explain   describe event, action and target codes
  types     list every event, action or target type
  version   print the version

Global options:
`

// Runner holds global state for one invocation.
type Runner struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	rowsFile   string
	logEvents  bool
}

// Run parses args and executes one command.
func Run(ctx context.Context, out, errOut io.Writer, args []string) error {
	r := &Runner{out: out, errOut: errOut}

	fs := flag.NewFlagSet("saiscope", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprint(errOut, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&r.configPath, "config", "", "Path to saiscope.yaml. Defaults and environment apply without it.")
	fs.StringVar(&r.rowsFile, "rows", "", "Read rows from a JSON or YAML export instead of the database.")
	fs.BoolVar(&r.logEvents, "log-events", false, "Write analysis events to stderr as JSON lines.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return usageError("no command given")
	}

	if r.logEvents {
		events.SetOutput(errOut)
		defer events.SetOutput(nil)
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "trace":
		return r.trace(ctx, rest)
	case "comments":
		return r.comments(ctx, rest)
	case "scripts":
		return r.scripts(ctx, rest)
	case "explain":
		return r.explain(rest)
	case "types":
		return r.types(rest)
	case "version":
		fmt.Fprintln(r.out, version.String())
		return nil
	}
	fs.Usage()
	return usageError("unknown command %q", cmd)
}

// groupFlags registers -source and -entry.
type groupFlags struct {
	source string
	entry  int64
}

func (g *groupFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.source, "source", "creature", "Source type: a number or a name such as creature, gameobject or tal.")
	fs.Int64Var(&g.entry, "entry", 0, "entryorguid of the script (negative for a guid script).")
}

func (g *groupFlags) key() (smartai.GroupKey, error) {
	st, err := smartai.ParseSourceType(g.source)
	if err != nil {
		return smartai.GroupKey{}, usageError("%v", err)
	}
	if g.entry == 0 {
		return smartai.GroupKey{}, usageError("-entry is required")
	}
	return smartai.GroupKey{SourceType: st, EntryOrGuid: g.entry}, nil
}

func (r *Runner) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("saiscope "+name, flag.ContinueOnError)
	fs.SetOutput(r.errOut)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return nil
}

func (r *Runner) open(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, cfg, app.Options{RowsFile: r.rowsFile})
}

func (r *Runner) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Runner) trace(ctx context.Context, args []string) error {
	fs := r.newFlagSet("trace")
	var g groupFlags
	g.register(fs)
	start := fs.Int64("start", 0, "id of the row to start from.")
	maxSteps := fs.Int("max-steps", 0, "Step budget, at most the configured budget. 0 uses the configured budget.")
	asJSON := fs.Bool("json", false, "Print the report as JSON.")
	if err := parse(fs, args); err != nil {
		return ignoreHelp(err)
	}
	key, err := g.key()
	if err != nil {
		return err
	}

	a, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.Analyzer.TraceChain(ctx, key, *start, *maxSteps)
	if err != nil {
		return err
	}
	if *asJSON {
		return r.writeJSON(report)
	}
	if err := report.Render(r.out); err != nil {
		return err
	}

	counts := report.StepCounts()
	summary := fmt.Sprintf("%s steps (%s always, %s probabilistic, %s cycles)",
		humanize.Comma(int64(len(report.Steps))),
		humanize.Comma(int64(counts["always"])),
		humanize.Comma(int64(counts["probabilistic"])),
		humanize.Comma(int64(counts["cycle"])))
	if report.Truncated {
		summary += fmt.Sprintf(", truncated at the %s step", humanize.Ordinal(report.MaxSteps+1))
	}
	fmt.Fprintln(r.out, summary)
	return nil
}

func (r *Runner) comments(ctx context.Context, args []string) error {
	fs := r.newFlagSet("comments")
	var g groupFlags
	g.register(fs)
	styleName := fs.String("style", "", "canonical or narrated. Defaults to the configured style.")
	changed := fs.Bool("changed", false, "Only print rows whose stored comment differs.")
	asJSON := fs.Bool("json", false, "Print the result as JSON.")
	if err := parse(fs, args); err != nil {
		return ignoreHelp(err)
	}
	key, err := g.key()
	if err != nil {
		return err
	}

	a, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	style := a.Style
	if *styleName != "" {
		if style, err = analyzer.ParseStyle(*styleName); err != nil {
			return usageError("%v", err)
		}
	}

	out, err := a.Analyzer.GenerateComments(ctx, key, style)
	if err != nil {
		return err
	}
	if *asJSON {
		return r.writeJSON(out)
	}

	var shown, partial, unresolved int
	for _, row := range out.Rows {
		if row.Partial {
			partial++
		}
		unresolved += len(row.Unresolved)
		if *changed && row.Comment == row.Current {
			continue
		}
		shown++
		fmt.Fprintf(r.out, "%d\t%s\n", row.ID, row.Comment)
	}
	fmt.Fprintf(r.out, "%s of %s rows shown, %s unresolved names, %s partial\n",
		humanize.Comma(int64(shown)), humanize.Comma(int64(len(out.Rows))),
		humanize.Comma(int64(unresolved)), humanize.Comma(int64(partial)))
	return nil
}

func (r *Runner) scripts(ctx context.Context, args []string) error {
	fs := r.newFlagSet("scripts")
	var g groupFlags
	g.register(fs)
	asJSON := fs.Bool("json", false, "Print the rows as JSON.")
	if err := parse(fs, args); err != nil {
		return ignoreHelp(err)
	}
	key, err := g.key()
	if err != nil {
		return err
	}

	a, err := r.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	rows, err := a.Analyzer.CompactGroup(ctx, key)
	if err != nil {
		return err
	}
	if *asJSON {
		return r.writeJSON(rows)
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLINK\tEVENT\tACTION\tTARGET\tCHANCE\tPARAMS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d%%\t%s\n",
			row.ID, row.Link, row.Event, row.Action, row.Target, row.Chance, formatParams(row.Params))
	}
	return tw.Flush()
}

func formatParams(params map[string]int64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, params[name])
	}
	return strings.Join(parts, " ")
}

func (r *Runner) explain(args []string) error {
	fs := r.newFlagSet("explain")
	event := fs.Int64("event", -1, "Event type code.")
	action := fs.Int64("action", -1, "Action type code.")
	target := fs.Int64("target", -1, "Target type code.")
	if err := parse(fs, args); err != nil {
		return ignoreHelp(err)
	}

	opt := func(v int64) *int64 {
		if v < 0 {
			return nil
		}
		return &v
	}
	ex := analyzer.Explain(opt(*event), opt(*action), opt(*target))
	if ex.Event == nil && ex.Action == nil && ex.Target == nil {
		return usageError("one of -event, -action or -target is required")
	}
	for _, d := range []*definitions.TypeDefinition{ex.Event, ex.Action, ex.Target} {
		if d != nil {
			r.printDefinition(*d)
		}
	}
	return nil
}

func (r *Runner) printDefinition(d definitions.TypeDefinition) {
	fmt.Fprintf(r.out, "%s %d %s\n", d.Kind, d.Code, d.Name)
	if d.Description != "" {
		fmt.Fprintf(r.out, "  %s\n", d.Description)
	}
	if d.Template != "" {
		fmt.Fprintf(r.out, "  narration: %s\n", d.Template)
	}
	for i, p := range d.Params {
		fmt.Fprintf(r.out, "  param%d %s (%s)\n", i+1, p.Name, p.Role)
	}
}

func (r *Runner) types(args []string) error {
	fs := r.newFlagSet("types")
	kindName := fs.String("kind", "event", "event, action or target.")
	if err := parse(fs, args); err != nil {
		return ignoreHelp(err)
	}
	kind, err := definitions.ParseKind(*kindName)
	if err != nil {
		return usageError("%v", err)
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, d := range analyzer.ListTypes(kind) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Code, d.Name, d.Description)
	}
	return tw.Flush()
}

func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
