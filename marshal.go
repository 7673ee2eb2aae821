package bitcol

import (
	"reflect"
)

// Decodes every bitwise column of the record into its flags, keyed by column name.
func (m *Model) Marshal(record any) (map[string][]string, error) {
	if value := reflect.ValueOf(record); value.Kind() == reflect.Struct {
		copied := reflect.New(value.Type())
		copied.Elem().Set(value)
		record = copied.Interface()
	}
	accessors, err := m.BindAll(record)
	if err != nil {
		return nil, err
	}
	data := make(map[string][]string, len(accessors))
	for _, accessor := range accessors {
		data[accessor.column.Name] = accessor.Flags()
	}
	return data, nil
}

// Assigns the flags in data to the columns of the record pointed to by v. Keys are column
// or field names, keys which are not columns are ignored. A column given undeclared
// flags keeps its value. If v is nil or not a pointer, Unmarshal returns an ErrInvalidUnmarshal.
func (m *Model) Unmarshal(data map[string][]string, v any) error {
	if v == nil || reflect.ValueOf(v).Kind() != reflect.Pointer {
		return ErrInvalidUnmarshal
	}
	for name, flags := range data {
		if !m.columns.Has(name) {
			continue
		}
		accessor, err := m.Bind(v, name)
		if err != nil {
			return err
		}
		accessor.Set(flags...)
	}
	return nil
}
