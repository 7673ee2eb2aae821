package bitcol

import (
	"github.com/rs/zerolog"
)

// Settings used when describing a model and binding its columns.
type Options struct {
	// The translator labels are resolved against, nil humanizes every label.
	Translator Translator
	// Lookup scopes tried before the built in keys for every column, in order.
	Scopes []string
	// The display name of the owning type used in lookup keys. Defaults to the Go type name.
	TypeName string
	// The struct tag holding the flag map. ex: `bitwise:"member:1,manager:2"`
	Tag string
	// The struct tag holding extra lookup scopes for one column. ex: `bitwise-scope:"roles,labels.roles"`
	ScopeTag string
	// The struct tag overriding the column name used in lookup keys. ex: `bitwise-name:"role"`
	NameTag string
	// Receives debug events for ignored assignments and label fallbacks.
	Logger zerolog.Logger
}

// New options with the default tags, no translator, and a disabled logger.
func NewOptions() *Options {
	return &Options{
		Scopes:   []string{},
		Tag:      "bitwise",
		ScopeTag: "bitwise-scope",
		NameTag:  "bitwise-name",
		Logger:   zerolog.Nop(),
	}
}

// Sets the translator labels are resolved against.
func (opts *Options) WithTranslator(translator Translator) *Options {
	opts.Translator = translator
	return opts
}

// Sets the scopes tried before the built in keys. The given slice is copied.
func (opts *Options) WithScopes(scopes ...string) *Options {
	opts.Scopes = append([]string{}, scopes...)
	return opts
}

// Sets the type name used in lookup keys.
func (opts *Options) WithTypeName(typeName string) *Options {
	opts.TypeName = typeName
	return opts
}

func (opts *Options) WithLogger(logger zerolog.Logger) *Options {
	opts.Logger = logger
	return opts
}

func (opts *Options) resolver(typeName string, field string, translator Translator, scopes []string) *Resolver {
	all := make([]string, 0, len(scopes)+len(opts.Scopes))
	all = append(all, scopes...)
	all = append(all, opts.Scopes...)
	return NewResolver(typeName, field, translator, all...).WithLogger(opts.Logger)
}
