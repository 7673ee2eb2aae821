package bitcol

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Codec converts between sets of flag names and the integer they are packed into.
//
// A codec is immutable once created and is safe to share between goroutines. It never
// mutates the values passed to it, callers store the returned packed value themselves.
type Codec[T constraints.Integer] struct {
	name  string
	flags FlagMap
}

// Creates a codec for the named column. Every declared position must fit in T.
func NewCodec[T constraints.Integer](name string, flags FlagMap) (*Codec[T], error) {
	if width := bitWidth[T](); flags.MaxPosition() > width {
		return nil, fmt.Errorf("%w: %s has position %d but the column only holds %d bits", ErrInvalidFlagMap, name, flags.MaxPosition(), width)
	}
	return &Codec[T]{name: name, flags: flags}, nil
}

// Creates a codec or panics.
func MustCodec[T constraints.Integer](name string, flags FlagMap) *Codec[T] {
	c, err := NewCodec[T](name, flags)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Codec[T]) Name() string {
	return c.name
}

func (c *Codec[T]) Mapping() FlagMap {
	return c.flags
}

func (c *Codec[T]) Keys() []string {
	return c.flags.Keys()
}

// The packed value with every declared flag set.
func (c *Codec[T]) Mask() T {
	mask := Flags[T]{}
	for _, flag := range c.flags.flags {
		mask.Set(Bit[T](flag.Position))
	}
	return mask.Get()
}

// Removes duplicate names (the first occurrence wins) and orders them by ascending bit
// position. Undeclared names are kept after every declared name in their input order.
func (c *Codec[T]) Normalize(names ...string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}
	slices.SortStableFunc(normalized, func(a, b string) bool {
		return c.rank(a) < c.rank(b)
	})
	return normalized
}

func (c *Codec[T]) rank(name string) int {
	if position, ok := c.flags.Position(name); ok {
		return position
	}
	return c.flags.MaxPosition() + 1
}

// Returns whether every name is declared. No names is valid.
func (c *Codec[T]) IsValid(names ...string) bool {
	for _, name := range names {
		if !c.flags.Has(name) {
			return false
		}
	}
	return true
}

// Returns the names of the declared flags set in value, in declaration order.
// Bits which are not declared are ignored.
func (c *Codec[T]) Decode(value T) []string {
	flags := FlagsOf(value)
	names := make([]string, 0, len(c.flags.flags))
	for _, flag := range c.flags.flags {
		if flags.Has(flag.Position) {
			names = append(names, flag.Name)
		}
	}
	return names
}

// Decodes a value which may be absent, nil decodes to no flags.
func (c *Codec[T]) DecodeOptional(value *T) []string {
	if value == nil {
		return []string{}
	}
	return c.Decode(*value)
}

// Packs the declared names into a value. Undeclared names contribute nothing.
func (c *Codec[T]) Encode(names ...string) T {
	flags := Flags[T]{}
	for _, name := range names {
		if position, ok := c.flags.Position(name); ok {
			flags.Set(Bit[T](position))
		}
	}
	return flags.Get()
}

// Returns the packed value of exactly the given names. If any name is undeclared the
// current value is returned unchanged.
func (c *Codec[T]) Assign(current T, names ...string) T {
	normalized := c.Normalize(names...)
	if !c.IsValid(normalized...) {
		return current
	}
	return c.Encode(normalized...)
}

// Returns the current value with the given names added. If any name is undeclared the
// current value is returned unchanged.
func (c *Codec[T]) Append(current T, names ...string) T {
	union := append(c.Decode(current), names...)
	return c.Assign(current, union...)
}

// Returns whether every given name is set in the current value. No names always matches.
func (c *Codec[T]) Contains(current T, names ...string) bool {
	return c.Match(names...)(current)
}

// Returns whether every given name is in the set of names.
func (c *Codec[T]) ContainsSet(set []string, names ...string) bool {
	normalized := c.Normalize(set...)
	for _, name := range c.Normalize(names...) {
		if !slices.Contains(normalized, name) {
			return false
		}
	}
	return true
}

// Returns a match for packed values which have every given flag set.
func (c *Codec[T]) Match(names ...string) Match[T] {
	if !c.IsValid(names...) {
		return matchNever[T]()
	}
	return MatchAll(c.Encode(names...))
}

// Returns a match for packed values which have at least one of the given flags set.
// Undeclared names are never set.
func (c *Codec[T]) MatchAny(names ...string) Match[T] {
	return MatchAny(c.Encode(names...))
}

// Returns a match for packed values which have none of the given flags set.
func (c *Codec[T]) MatchNone(names ...string) Match[T] {
	return MatchNone(c.Encode(names...))
}

// Returns a match for packed values which have no bits set besides the given flags.
func (c *Codec[T]) MatchOnly(names ...string) Match[T] {
	return MatchOnly(c.Encode(names...))
}

// Returns a match for packed values which are exactly the given flags.
func (c *Codec[T]) MatchExact(names ...string) Match[T] {
	if !c.IsValid(names...) {
		return matchNever[T]()
	}
	return MatchExact(c.Encode(names...))
}

// The number of bits T can hold.
func bitWidth[T constraints.Integer]() int {
	width := 0
	for v := T(1); v != 0; v <<= 1 {
		width++
	}
	return width
}
