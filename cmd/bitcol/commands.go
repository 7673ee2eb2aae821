package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ClickerMonkey/bitcol"
)

// Returned by check when the value does not match.
var errUnset = errors.New("flags do not match")

type codecMatch func(codec *bitcol.Codec[uint64], names ...string) bitcol.Match[uint64]

// The --match modes of check.
var checkModes = map[string]codecMatch{
	"all":   (*bitcol.Codec[uint64]).Match,
	"any":   (*bitcol.Codec[uint64]).MatchAny,
	"none":  (*bitcol.Codec[uint64]).MatchNone,
	"only":  (*bitcol.Codec[uint64]).MatchOnly,
	"exact": (*bitcol.Codec[uint64]).MatchExact,
}

func (env *environment) parseValue(args []string) (uint64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("a value is required")
	}
	value, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	return value, args[1:], nil
}

// Converts names, labels or unique prefixes of either into flag names.
func (env *environment) names(inputs []string) ([]string, error) {
	options, err := env.codec.InputOptions(env.resolver, bitcol.Filter{})
	if err != nil {
		return nil, err
	}
	return bitcol.NewChoices(options).ConvertAll(inputs)
}

func runEncode(env *environment, args []string) error {
	names, err := env.names(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, env.codec.Encode(names...))
	return nil
}

func runDecode(env *environment, args []string) error {
	value, _, err := env.parseValue(args)
	if err != nil {
		return err
	}
	if undeclared := value &^ env.codec.Mask(); undeclared != 0 {
		env.logger.Warn().Uint64("bits", undeclared).Msg("value has undeclared bits, they are dropped")
	}
	for _, name := range env.codec.Decode(value) {
		fmt.Fprintf(env.out, "%s\t%s\n", name, env.resolver.Translate(name))
	}
	return nil
}

func runAssign(env *environment, args []string) error {
	return env.write(args, env.codec.Assign)
}

func runAppend(env *environment, args []string) error {
	return env.write(args, env.codec.Append)
}

func (env *environment) write(args []string, apply func(current uint64, names ...string) uint64) error {
	value, rest, err := env.parseValue(args)
	if err != nil {
		return err
	}
	names, err := env.names(rest)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, apply(value, names...))
	return nil
}

func runCheck(env *environment, args []string) error {
	mode, ok := checkModes[env.match]
	if !ok {
		return fmt.Errorf("unknown --match %q", env.match)
	}
	value, rest, err := env.parseValue(args)
	if err != nil {
		return err
	}
	names, err := env.names(rest)
	if err != nil {
		return err
	}
	if !bitcol.FlagsOf(value).Is(mode(env.codec, names...)) {
		return fmt.Errorf("%w: %s of %s", errUnset, env.match, strings.Join(names, ", "))
	}
	fmt.Fprintln(env.out, "true")
	return nil
}

func runOptions(env *environment, args []string) error {
	var current *uint64
	if len(args) > 0 {
		value, _, err := env.parseValue(args)
		if err != nil {
			return err
		}
		current = &value
	}
	options, err := env.codec.InputOptions(env.resolver, env.filter)
	if err != nil {
		return err
	}
	help, err := bitcol.NewHelp(env.codec, options, current).Format(2, env.width, 4)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, help)
	return nil
}
