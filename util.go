package bitcol

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var normalizer = regexp.MustCompile("[^a-zA-Z0-9]")

// Lowercases and strips punctuation, used for registry keys and choice matching.
func Normalize(x string) string {
	return strings.ToLower(normalizer.ReplaceAllString(x, ""))
}

// Converts a single name, a collection of names, or nil into a list of names.
// Strings, fmt.Stringers and anything else printable are accepted as single names.
func NamesOf(input any) []string {
	switch cast := input.(type) {
	case nil:
		return []string{}
	case string:
		return []string{cast}
	case []string:
		return append([]string{}, cast...)
	case fmt.Stringer:
		return []string{cast.String()}
	}

	value := reflect.ValueOf(input)
	switch value.Kind() {
	case reflect.Pointer:
		if value.IsNil() {
			return []string{}
		}
		return NamesOf(value.Elem().Interface())
	case reflect.Slice, reflect.Array:
		names := make([]string, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			names = append(names, NamesOf(value.Index(i).Interface())...)
		}
		return names
	}
	return []string{fmt.Sprint(input)}
}

func concreteType(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

func reflectValue(value any) reflect.Value {
	if v, ok := value.(reflect.Value); ok {
		return v
	}
	return reflect.ValueOf(value)
}

// Returns whether the type is an integer or a pointer to one.
func isIntegerType(typ reflect.Type) bool {
	switch concreteType(typ).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// Reads the bits of an integer field. A nil pointer reads as absent.
func getInteger(value reflect.Value) (uint64, bool) {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return 0, false
		}
		return getInteger(value.Elem())
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(value.Int()), true
	default:
		return value.Uint(), true
	}
}

// Writes the bits to an integer field, allocating a nil pointer.
func setInteger(value reflect.Value, bits uint64) {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			value.Set(reflect.New(value.Type().Elem()))
		}
		setInteger(value.Elem(), bits)
		return
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value.SetInt(int64(bits))
	default:
		value.SetUint(bits)
	}
}

// Splits a comma delimited list, trimming spaces and dropping empty items.
func splitList(list string) []string {
	items := []string{}
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
