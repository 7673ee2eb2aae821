package bitcol

import (
	"fmt"
	"reflect"
)

// A bitwise column: an integer field of a struct and the codec and resolver for its flags.
type Column struct {
	// The Go field name.
	Field string
	// The column name used in lookup keys, the field name in snake case by default. ex: `bitwise-name:"role"`
	Name string
	// The field type, an integer or a pointer to one.
	Type reflect.Type
	// The flag codec for the column.
	Codec *Codec[uint64]
	// Resolves labels for the column's flags.
	Resolver *Resolver

	scopes []string
	index  []int
}

// Returns whether the field can hold an absent value.
func (col Column) IsNullable() bool {
	return col.Type.Kind() == reflect.Pointer
}

// The bitwise columns of a struct type. A model is described once, typically into a package
// level variable next to the type, and only read afterwards.
type Model struct {
	// The struct type.
	Type reflect.Type
	// The display name of the type used in lookup keys.
	Name    string
	columns Registry
	options *Options
}

// Describes the bitwise columns of the struct (or pointer to struct) given. Every exported
// integer field with the bitwise tag becomes a column, fields of embedded structs included.
func Describe(model any, opts *Options) (*Model, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if model == nil {
		return nil, ErrInvalidRecord
	}
	typ := concreteType(reflectValue(model).Type())
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, typ)
	}
	m := &Model{
		Type:    typ,
		Name:    typ.Name(),
		columns: NewRegistry(),
		options: opts,
	}
	if opts.TypeName != "" {
		m.Name = opts.TypeName
	}
	if err := m.addColumns(typ, nil); err != nil {
		return nil, err
	}
	return m, nil
}

// Describes a model or panics, for package level declarations.
func MustDescribe(model any, opts *Options) *Model {
	m, err := Describe(model, opts)
	if err != nil {
		panic(err)
	}
	return m
}

// Adds the columns defined in the struct type to the model.
func (m *Model) addColumns(structType reflect.Type, index []int) error {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldIndex := append(append([]int{}, index...), i)

		if field.Anonymous && field.IsExported() && field.Type.Kind() == reflect.Struct {
			if err := m.addColumns(field.Type, fieldIndex); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		tag, ok := field.Tag.Lookup(m.options.Tag)
		if !ok || tag == "-" {
			continue
		}
		column, err := m.getColumn(field, tag, fieldIndex)
		if err != nil {
			return err
		}
		if !m.columns.Add(column) {
			return fmt.Errorf("%w: %s.%s duplicates column %q", ErrInvalidTag, m.Name, field.Name, column.Name)
		}
	}
	return nil
}

func (m *Model) getColumn(field reflect.StructField, tag string, index []int) (*Column, error) {
	if !isIntegerType(field.Type) {
		return nil, fmt.Errorf("%w: %s.%s is %v", ErrInvalidColumnType, m.Name, field.Name, field.Type)
	}
	flags, err := ParseFlagMap(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidTag, m.Name, field.Name, err)
	}
	if bits := concreteType(field.Type).Bits(); flags.MaxPosition() > bits {
		return nil, fmt.Errorf("%w: %s.%s has position %d but only holds %d bits", ErrInvalidFlagMap, m.Name, field.Name, flags.MaxPosition(), bits)
	}

	name := Underscore(field.Name)
	if override, ok := field.Tag.Lookup(m.options.NameTag); ok && override != "" {
		name = override
	}
	scopes := []string{}
	if scopeTag, ok := field.Tag.Lookup(m.options.ScopeTag); ok {
		scopes = splitList(scopeTag)
	}

	codec, err := NewCodec[uint64](name, flags)
	if err != nil {
		return nil, err
	}
	return &Column{
		Field:    field.Name,
		Name:     name,
		Type:     field.Type,
		Codec:    codec,
		Resolver: m.options.resolver(m.Name, name, m.options.Translator, scopes),
		scopes:   scopes,
		index:    index,
	}, nil
}

// Returns the columns in declaration order.
func (m *Model) Columns() []*Column {
	return m.columns.Entries()
}

// Returns the column with the given field or column name, or nil.
func (m *Model) Column(name string) *Column {
	return m.columns.Get(name)
}

// Returns the accessor for the named column of the record, which must be a non-nil pointer
// to a value of the model's type.
func (m *Model) Bind(record any, name string) (*Accessor, error) {
	value, err := m.recordValue(record)
	if err != nil {
		return nil, err
	}
	column := m.columns.Get(name)
	if column == nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotFound, m.Name, name)
	}
	resolver := column.Resolver
	if translatable, ok := record.(Translatable); ok {
		resolver = m.options.resolver(m.Name, column.Name, translatable.Translator(), column.scopes)
	}
	return &Accessor{
		column:   column,
		value:    value.FieldByIndex(column.index),
		resolver: resolver,
		model:    m,
	}, nil
}

// Returns accessors for every column of the record in declaration order.
func (m *Model) BindAll(record any) ([]*Accessor, error) {
	accessors := make([]*Accessor, 0, m.columns.Len())
	for _, column := range m.columns.Entries() {
		accessor, err := m.Bind(record, column.Field)
		if err != nil {
			return nil, err
		}
		accessors = append(accessors, accessor)
	}
	return accessors, nil
}

func (m *Model) recordValue(record any) (reflect.Value, error) {
	value := reflect.ValueOf(record)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidRecord
	}
	if value.Elem().Type() != m.Type {
		return reflect.Value{}, fmt.Errorf("%w: %v is not %v", ErrModelMismatch, value.Elem().Type(), m.Type)
	}
	return value.Elem(), nil
}
