package bitcol

import (
	"reflect"
)

// Flag style access to one bitwise column of one record. An accessor reads and writes the
// record's field directly and does no locking, callers synchronize concurrent writers.
type Accessor struct {
	column   *Column
	value    reflect.Value
	resolver *Resolver
	model    *Model
}

func (a *Accessor) Column() *Column {
	return a.column
}

// The packed value of the field, 0 when the field is a nil pointer.
func (a *Accessor) Value() uint64 {
	value, _ := getInteger(a.value)
	return value
}

// Returns whether the field is a nil pointer.
func (a *Accessor) IsNull() bool {
	_, present := getInteger(a.value)
	return !present
}

// Writes the packed value to the field.
func (a *Accessor) SetValue(value uint64) {
	setInteger(a.value, value)
}

// The flags set on the field in declaration order.
func (a *Accessor) Flags() []string {
	value, present := getInteger(a.value)
	if !present {
		return []string{}
	}
	return a.column.Codec.Decode(value)
}

// Replaces the flags on the field. Undeclared names leave the field unchanged and false is returned.
func (a *Accessor) Set(names ...string) bool {
	return a.write("assign", names, a.column.Codec.Assign)
}

// Adds flags to the field. Undeclared names leave the field unchanged and false is returned.
func (a *Accessor) Append(names ...string) bool {
	return a.write("append", names, a.column.Codec.Append)
}

func (a *Accessor) write(op string, names []string, apply func(current uint64, names ...string) uint64) bool {
	if !a.column.Codec.IsValid(names...) {
		a.model.options.Logger.Debug().
			Str("type", a.model.Name).
			Str("column", a.column.Name).
			Strs("flags", names).
			Msgf("ignoring %s of undeclared flags", op)
		return false
	}
	current, _ := getInteger(a.value)
	a.SetValue(apply(current, names...))
	return true
}

// Returns whether every given flag is set on the field.
func (a *Accessor) Has(names ...string) bool {
	return a.Is(a.column.Codec.Match(names...))
}

// Returns whether at least one of the given flags is set on the field.
func (a *Accessor) HasAny(names ...string) bool {
	return a.Is(a.column.Codec.MatchAny(names...))
}

// Returns whether no flag is set on the field, a null field included.
func (a *Accessor) IsEmpty() bool {
	return a.Is(MatchEmpty[uint64]())
}

// Returns whether the field value passes the match, built from the column codec:
//
//	role.Is(MatchAnd(codec.MatchAny("admin", "manager"), codec.MatchNone("finance")))
func (a *Accessor) Is(match Match[uint64]) bool {
	current, _ := getInteger(a.value)
	return FlagsOf(current).Is(match)
}

// The labels of the flags set on the field.
func (a *Accessor) Text() []string {
	return a.resolver.Text(a.Flags())
}

// The label of a single flag of the column.
func (a *Accessor) Label(name string) string {
	return a.resolver.Translate(name)
}

// Lists the column's flags with their labels for a select input.
func (a *Accessor) InputOptions(filter Filter) ([]InputOption, error) {
	return a.column.Codec.InputOptions(a.resolver, filter)
}
