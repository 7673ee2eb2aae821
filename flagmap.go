package bitcol

import (
	"fmt"
	"strconv"
	"strings"
)

// A named flag and the 1-based bit position it occupies.
type Flag struct {
	Name     string
	Position int
}

// An ordered mapping of flag names to bit positions. Positions do not need to be
// contiguous, and two names sharing a position are synonyms.
type FlagMap struct {
	flags     []Flag
	positions map[string]int
	max       int
}

// Creates a flag map from the given flags in declaration order.
func NewFlagMap(flags ...Flag) (FlagMap, error) {
	m := FlagMap{
		flags:     make([]Flag, 0, len(flags)),
		positions: make(map[string]int, len(flags)),
	}
	for _, flag := range flags {
		if flag.Name == "" {
			return FlagMap{}, fmt.Errorf("%w: empty flag name", ErrInvalidFlagMap)
		}
		if _, exists := m.positions[flag.Name]; exists {
			return FlagMap{}, fmt.Errorf("%w: duplicate flag %q", ErrInvalidFlagMap, flag.Name)
		}
		if flag.Position < 1 {
			return FlagMap{}, fmt.Errorf("%w: flag %q has position %d, positions start at 1", ErrInvalidFlagMap, flag.Name, flag.Position)
		}
		m.flags = append(m.flags, flag)
		m.positions[flag.Name] = flag.Position
		if flag.Position > m.max {
			m.max = flag.Position
		}
	}
	return m, nil
}

// Parses a flag map from a tag string.
// ParseFlagMap("member:1,manager:2,admin") is parsed to {member:1, manager:2, admin:3}, a
// flag without a position takes the position after the previous flag.
func ParseFlagMap(tag string) (FlagMap, error) {
	flags := []Flag{}
	previous := 0
	for _, option := range strings.Split(tag, ",") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		nameValue := strings.SplitN(option, ":", 2)
		flag := Flag{
			Name:     strings.TrimSpace(nameValue[0]),
			Position: previous + 1,
		}
		if len(nameValue) > 1 {
			position, err := strconv.Atoi(strings.TrimSpace(nameValue[1]))
			if err != nil {
				return FlagMap{}, fmt.Errorf("%w: position of %q is not a number", ErrInvalidFlagMap, flag.Name)
			}
			flag.Position = position
		}
		previous = flag.Position
		flags = append(flags, flag)
	}
	return NewFlagMap(flags...)
}

// Creates a flag map or panics, for package level declarations.
func MustFlagMap(tag string) FlagMap {
	m, err := ParseFlagMap(tag)
	if err != nil {
		panic(err)
	}
	return m
}

// The number of declared flags.
func (m FlagMap) Len() int {
	return len(m.flags)
}

// The declared flag names in declaration order.
func (m FlagMap) Keys() []string {
	keys := make([]string, len(m.flags))
	for i, flag := range m.flags {
		keys[i] = flag.Name
	}
	return keys
}

// The declared flags in declaration order.
func (m FlagMap) Flags() []Flag {
	flags := make([]Flag, len(m.flags))
	copy(flags, m.flags)
	return flags
}

// Returns the position of the named flag and whether it is declared.
func (m FlagMap) Position(name string) (int, bool) {
	position, ok := m.positions[name]
	return position, ok
}

// Returns whether the named flag is declared.
func (m FlagMap) Has(name string) bool {
	_, ok := m.positions[name]
	return ok
}

// The highest declared position.
func (m FlagMap) MaxPosition() int {
	return m.max
}

// Formats the map in the tag form accepted by ParseFlagMap.
func (m FlagMap) String() string {
	pairs := make([]string, len(m.flags))
	for i, flag := range m.flags {
		pairs[i] = flag.Name + ":" + strconv.Itoa(flag.Position)
	}
	return strings.Join(pairs, ",")
}
