// Command crtavatar renders CRT-style pixel avatars.
//
// Usage:
//
//	crtavatar render  -size 512 -seed 42 -set hairStyle=mohawk -o avatar.png
//	crtavatar batch   -count 100 -start-seed 0 -size 256 -out avatars/
//	crtavatar schema  -o params.schema.json
//	crtavatar preview -seed 42
//	crtavatar traits
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/crtavatar"
	"github.com/gogpu/crtavatar/effects"
)

// command is one subcommand.
type command struct {
	summary string
	run     func(ctx context.Context, env *env, args []string) error
}

var commands = map[string]command{
	"render":  {"render one avatar to PNG", runRender},
	"batch":   {"render a range of seeds concurrently", runBatch},
	"schema":  {"write the effect parameter JSON schema", runSchema},
	"preview": {"show an avatar in the terminal", runPreview},
	"traits":  {"list trait categories and variants", runTraits},
}

// env carries the process streams so commands can be tested.
type env struct {
	stdout, stderr io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &env{stdout: os.Stdout, stderr: os.Stderr}, os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "crtavatar: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		usage(e.stderr)
		return errors.New("missing command")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(e.stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.run(ctx, e, args[1:])
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: crtavatar <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
}

// newFlagSet returns a FlagSet that reports errors instead of exiting and
// registers the -v flag shared by every command.
func newFlagSet(e *env, name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	verbose := fs.Bool("v", false, "log debug output to stderr")
	return fs, verbose
}

// setupLogging installs a stderr logger: Warn by default, Debug with -v.
func setupLogging(e *env, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	crtavatar.SetLogger(slog.New(slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: level})))
}

// seedFlag is an int64 flag that remembers whether it was given.
type seedFlag struct {
	value int64
	set   bool
}

func (s *seedFlag) String() string {
	if !s.set {
		return "random"
	}
	return strconv.FormatInt(s.value, 10)
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	s.value, s.set = n, true
	return nil
}

func (s *seedFlag) ptr() *int64 {
	if !s.set {
		return nil
	}
	v := s.value
	return &v
}

// overrideFlag collects repeated -set category=name flags.
type overrideFlag map[string]string

func (o overrideFlag) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (o overrideFlag) Set(v string) error {
	k, name, ok := strings.Cut(v, "=")
	if !ok || k == "" {
		return fmt.Errorf("want category=name, got %q", v)
	}
	o[k] = name
	return nil
}

// loadParams reads an effect parameter document, or returns the defaults
// when path is empty.
func loadParams(path string) (*effects.Params, error) {
	if path == "" {
		return effects.DefaultParams(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return effects.Load(f)
}
