package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ClickerMonkey/bitcol"
)

// An error returned when no command is given in the arguments.
var ErrNoCommand = errors.New("no command given, try running with --help")

type command struct {
	Help string
	Run  func(env *environment, args []string) error
}

var commands = map[string]command{
	"encode":  {Help: "encode NAME...            packs flag names or labels into a value", Run: runEncode},
	"decode":  {Help: "decode VALUE              lists the flags set in a value", Run: runDecode},
	"assign":  {Help: "assign VALUE NAME...      replaces the flags of a value", Run: runAssign},
	"append":  {Help: "append VALUE NAME...      adds flags to a value", Run: runAppend},
	"check":   {Help: "check VALUE NAME...       exits 1 unless the value matches the flags (see --match)", Run: runCheck},
	"options": {Help: "options [VALUE]           lists the declared flags and labels", Run: runOptions},
}

var commandOrder = []string{"encode", "decode", "assign", "append", "check", "options"}

// Everything a command needs, built from the global flags.
type environment struct {
	codec    *bitcol.Codec[uint64]
	resolver *bitcol.Resolver
	filter   bitcol.Filter
	match    string
	out      io.Writer
	width    int
	logger   zerolog.Logger
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUnset) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("bitcol", pflag.ContinueOnError)
	flagMap := flags.StringP("map", "m", "", `flag map, ex: "member:1,manager:2,admin:3"`)
	typeName := flags.StringP("type", "t", "Record", "owning type name used in translation keys")
	field := flags.StringP("field", "f", "flags", "column name used in translation keys")
	scopes := flags.StringSlice("scope", nil, "custom translation scopes, tried first")
	translations := flags.StringSlice("translations", nil, "locale files (.yml, .yaml, .json)")
	locale := flags.StringP("locale", "l", "en", "locale for labels")
	defaultLocale := flags.String("default-locale", "en", "locale used when a label is missing")
	only := flags.StringSlice("only", nil, "only list these flags")
	except := flags.StringSlice("except", nil, "do not list these flags")
	width := flags.IntP("width", "w", 0, "wrap width for options, defaults to the terminal width")
	match := flags.String("match", "all", "check mode: all, any, none, only or exact")
	verbose := flags.BoolP("verbose", "v", false, "log debug events")
	flags.Usage = func() {
		fmt.Fprintf(out, "Usage: bitcol COMMAND [flags]\n\nCommands:\n")
		for _, name := range commandOrder {
			fmt.Fprintf(out, "  %s\n", commands[name].Help)
		}
		fmt.Fprintf(out, "\nFlags:\n%s", flags.FlagUsages())
	}
	flags.SetInterspersed(true)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	positional := flags.Args()
	if len(positional) == 0 {
		return ErrNoCommand
	}
	cmd, ok := commands[positional[0]]
	if !ok {
		return fmt.Errorf("command not found: %v", positional[0])
	}

	parsed, err := bitcol.ParseFlagMap(*flagMap)
	if err != nil {
		return err
	}
	if parsed.Len() == 0 {
		return fmt.Errorf("--map is required")
	}
	codec, err := bitcol.NewCodec[uint64](*field, parsed)
	if err != nil {
		return err
	}

	var translator bitcol.Translator
	if len(*translations) > 0 {
		catalog, err := bitcol.NewCatalog(*defaultLocale)
		if err != nil {
			return err
		}
		for _, path := range *translations {
			if err := catalog.AddFile(path); err != nil {
				return err
			}
			logger.Debug().Str("file", path).Msg("loaded translations")
		}
		translator = catalog.Translator(*locale)
	}

	env := &environment{
		codec:    codec,
		resolver: bitcol.NewResolver(*typeName, *field, translator, *scopes...).WithLogger(logger),
		filter:   bitcol.Filter{Only: *only, Except: *except},
		match:    *match,
		out:      out,
		width:    *width,
		logger:   logger,
	}
	if env.width == 0 {
		env.width = terminalWidth()
	}

	return cmd.Run(env, positional[1:])
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
