package bitcol

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var underscorer = regexp.MustCompile("(.)([A-Z])")

// Converts a type identifier into its table style name. UserAdmin -> user_admin
func Underscore(typeName string) string {
	return strings.ToLower(underscorer.ReplaceAllString(typeName, "${1}_${2}"))
}

// Converts a flag name into display text. customer_service -> Customer Service
func Humanize(name string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	segments := strings.Split(name, "_")
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(segment)
		segments[i] = upper.String(segment[:size]) + lower.String(segment[size:])
	}
	return strings.Join(segments, " ")
}

// Resolves display labels for the flags of one column.
type Resolver struct {
	typeName   string
	field      string
	scopes     []string
	translator Translator
	logger     zerolog.Logger
}

// Creates a resolver for the column field on the type with the given identifier. The
// translator may be nil, in which case every label is humanized. Scopes are tried in order
// before the built in keys.
func NewResolver(typeName string, field string, translator Translator, scopes ...string) *Resolver {
	return &Resolver{
		typeName:   Underscore(typeName),
		field:      field,
		scopes:     append([]string(nil), scopes...),
		translator: translator,
		logger:     zerolog.Nop(),
	}
}

// Sets the logger which records label fallbacks.
func (r *Resolver) WithLogger(logger zerolog.Logger) *Resolver {
	r.logger = logger
	return r
}

// The table style name of the owning type.
func (r *Resolver) TypeName() string {
	return r.typeName
}

// The lookup keys for a flag in the order they are tried.
func (r *Resolver) Keys(flag string) []string {
	keys := make([]string, 0, len(r.scopes)+3)
	for _, scope := range r.scopes {
		keys = append(keys, scope+"."+flag)
	}
	return append(keys,
		"bitwise_column."+r.typeName+"."+r.field+"."+flag,
		"activerecord.attributes."+r.typeName+"."+r.field+"/"+flag,
		"activemodel.attributes."+r.typeName+"."+r.field+"/"+flag,
	)
}

// Returns the first translation found for the flag, or the humanized flag name.
func (r *Resolver) Translate(flag string) string {
	if r == nil || r.translator == nil {
		return Humanize(flag)
	}
	for _, key := range r.Keys(flag) {
		if text, ok := r.translator.Lookup(key); ok {
			return text
		}
	}
	r.logger.Debug().Str("type", r.typeName).Str("field", r.field).Str("flag", flag).Msg("no translation, using default label")
	return Humanize(flag)
}

// Translates each flag.
func (r *Resolver) Text(flags []string) []string {
	text := make([]string, len(flags))
	for i, flag := range flags {
		text[i] = r.Translate(flag)
	}
	return text
}
