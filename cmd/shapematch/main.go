package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	sm "github.com/reoring/shapematch"
	"github.com/reoring/shapematch/catalog"
	"github.com/reoring/shapematch/i18n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one subcommand and returns the process exit status:
// 0 all types accepted, 1 at least one mismatch, 2 usage or load error.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "check":
		return checkCmd(args[1:], stdout, stderr)
	case "list":
		return listCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "shapematch CLI\n\nUsage:\n  shapematch check -want snapshot.yaml -live live.json [-type T1[,T2,...]] [-dir encode|decode|both] [-explain]\n  shapematch list -catalog file.{json,yaml}\n\nNotes:\n  - check derives declared shapes from -want and matches them against the descriptors in -live.\n  - Without -type every type defined in -want is checked.")
}

func checkCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var wantPath, livePath, typesCSV, dirName, lang string
	var maxDepth int
	var explain, verbose, noColor bool
	fs.StringVar(&wantPath, "want", "", "catalog the declared shapes are derived from")
	fs.StringVar(&livePath, "live", "", "catalog of live descriptors to match against")
	fs.StringVar(&typesCSV, "type", "", "comma-separated type names to check (default: all defined in -want)")
	fs.StringVar(&dirName, "dir", "both", "direction: encode, decode or both")
	fs.IntVar(&maxDepth, "max-depth", sm.DefaultMaxDepth, "maximum nesting of declared shapes")
	fs.StringVar(&lang, "lang", "en", "message language (en|ja)")
	fs.BoolVar(&explain, "explain", false, "print the reasons for each mismatch")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if wantPath == "" || livePath == "" {
		fs.Usage()
		return 2
	}
	dirs, err := parseDirections(dirName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	i18n.SetLanguage(lang)
	want, err := catalog.Load(wantPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: loading -want: %v\n", err)
		return 2
	}
	live, err := catalog.Load(livePath)
	if err != nil {
		fmt.Fprintf(stderr, "error: loading -live: %v\n", err)
		return 2
	}
	logf("check: want=%s (%d types) live=%s (%d types) dir=%s max-depth=%d", wantPath, want.Len(), livePath, live.Len(), dirName, maxDepth)

	names := splitCSV(typesCSV)
	if len(names) == 0 {
		names = want.Defined()
	}

	okStyle := painter(stdout, noColor, color.FgGreen)
	badStyle := painter(stdout, noColor, color.FgRed)
	status := 0
	for _, name := range names {
		shape, err := want.ShapeOf(name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		d, found := live.Lookup(name)
		if !found {
			fmt.Fprintf(stdout, "%s %s: not present in live catalog\n", badStyle("missing"), name)
			status = 1
			continue
		}
		for _, dir := range dirs {
			logf("check: %s (%s, live kind %s)", name, dir, catalog.Label(d))
			ok, issues, err := sm.Explain(shape, dir, d, sm.MatchOpt{MaxDepth: maxDepth})
			switch {
			case err != nil:
				fmt.Fprintf(stdout, "%s %s (%s): %v\n", badStyle("error"), name, dir, err)
				status = 1
			case ok:
				fmt.Fprintf(stdout, "%s %s (%s)\n", okStyle("ok"), name, dir)
			default:
				fmt.Fprintf(stdout, "%s %s (%s)\n", badStyle("mismatch"), name, dir)
				status = 1
			}
			if explain && !ok {
				for _, it := range issues {
					fmt.Fprintf(stdout, "  %s: %s\n", it.Path, it.Message)
				}
			}
		}
	}
	return status
}

func listCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var path string
	var all bool
	fs.StringVar(&path, "catalog", "", "catalog file (.json, .yaml, .yml)")
	fs.BoolVar(&all, "all", false, "include builtin base types")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if path == "" {
		fs.Usage()
		return 2
	}
	c, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	names := c.Defined()
	if all {
		names = c.Names()
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, n := range names {
		d, _ := c.Lookup(n)
		fmt.Fprintf(tw, "%s\t%s\n", n, catalog.Label(d))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	return 0
}

func parseDirections(s string) ([]sm.Direction, error) {
	switch strings.ToLower(s) {
	case "encode":
		return []sm.Direction{sm.Encode}, nil
	case "decode":
		return []sm.Direction{sm.Decode}, nil
	case "both", "":
		return []sm.Direction{sm.Encode, sm.Decode}, nil
	}
	return nil, fmt.Errorf("unknown direction %q (want encode, decode or both)", s)
}

// painter colors text only when w is a terminal.
func painter(w io.Writer, disabled bool, attr color.Attribute) func(a ...any) string {
	c := color.New(attr)
	if f, ok := w.(*os.File); ok && !disabled && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
