package bitcol

// A translation provider. Lookup returns the text for a key and whether it was found.
// Providers are expected to be local compiled tables, a lookup never blocks.
type Translator interface {
	Lookup(key string) (string, bool)
}

// A function which acts as a Translator.
type TranslatorFunc func(key string) (string, bool)

func (f TranslatorFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// A translator which never finds a key, so every label is humanized.
type NullTranslator struct{}

func (NullTranslator) Lookup(key string) (string, bool) {
	return "", false
}

// A record which supplies its own translator, taking precedence over the one in Options
// when binding accessors.
type Translatable interface {
	Translator() Translator
}
