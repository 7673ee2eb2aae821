package bitcol

import "golang.org/x/exp/constraints"

// A packed set of bits over any integer type.
type Flags[T constraints.Integer] struct {
	value T
}

// Creates flags with the given packed value.
func FlagsOf[T constraints.Integer](value T) Flags[T] {
	return Flags[T]{value: value}
}

// Returns the single bit for a 1-based position.
func Bit[T constraints.Integer](position int) T {
	return T(1) << (position - 1)
}

func (f *Flags[T]) Set(flags T) {
	f.value = f.value | flags
}
func (f *Flags[T]) Remove(flags T) {
	f.value = f.value & ^flags
}
func (f *Flags[T]) Only(flags T) {
	f.value = f.value & flags
}
func (f *Flags[T]) Toggle(flags T) {
	f.value = f.value ^ flags
}
func (f *Flags[T]) Clear() {
	f.value = 0
}
func (f Flags[T]) IsEmpty() bool {
	return f.value == 0
}
func (f Flags[T]) Get() T {
	return f.value
}
func (f Flags[T]) Is(match Match[T]) bool {
	return match(f.value)
}

// Returns whether the bit at the 1-based position is set.
func (f Flags[T]) Has(position int) bool {
	return f.value&Bit[T](position) != 0
}
