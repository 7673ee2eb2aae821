package bitcol

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// A compiled translation table of dotted keys to text.
type Table map[string]string

func (t Table) Lookup(key string) (string, bool) {
	text, ok := t[key]
	return text, ok
}

// Flattens nested maps into a table, joining keys with a dot.
// {"bitwise_column": {"user": {"role": {"member": "Member"}}}} -> {"bitwise_column.user.role.member": "Member"}
func FlattenTable(nested map[string]any) Table {
	table := Table{}
	flatten(table, "", nested)
	return table
}

func flatten(table Table, prefix string, value any) {
	switch cast := value.(type) {
	case map[string]any:
		for key, inner := range cast {
			flatten(table, joinKey(prefix, key), inner)
		}
	case map[any]any:
		for key, inner := range cast {
			flatten(table, joinKey(prefix, fmt.Sprint(key)), inner)
		}
	case []any, nil:
		// lists and empty nodes are not labels
	default:
		table[prefix] = fmt.Sprint(cast)
	}
}

func joinKey(prefix string, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Decodes locale file data into nested maps.
type TableImporter func(data []byte) (map[string]any, error)

// Importers by file extension (without the dot).
var TableImports = map[string]TableImporter{
	"json": func(data []byte) (map[string]any, error) {
		nested := map[string]any{}
		err := json.Unmarshal(data, &nested)
		return nested, err
	},
	"yaml": importYaml,
	"yml":  importYaml,
}

func importYaml(data []byte) (map[string]any, error) {
	root := map[string]yamlNode{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return yamlNodes(root), nil
}

// A YAML value whose mapping keys and scalars are kept as written. Plain YAML 1.1 would
// read the Norwegian locale key no as false and a flag named on as true.
type yamlNode struct {
	value any
}

func (n *yamlNode) UnmarshalYAML(unmarshal func(any) error) error {
	var nested map[string]yamlNode
	if err := unmarshal(&nested); err == nil {
		n.value = yamlNodes(nested)
		return nil
	}
	var text string
	if err := unmarshal(&text); err == nil {
		n.value = text
		return nil
	}
	return unmarshal(&n.value)
}

func yamlNodes(nodes map[string]yamlNode) map[string]any {
	nested := make(map[string]any, len(nodes))
	for key, node := range nodes {
		nested[key] = node.value
	}
	return nested
}

// Translation tables by locale. The top level keys of each loaded document are locale
// tags, the layout of Rails locale files:
//
//	en:
//	  bitwise_column:
//	    user:
//	      role:
//	        member: Member
//
// A catalog is populated before use and only read afterwards.
type Catalog struct {
	tables        map[language.Tag]Table
	defaultLocale language.Tag
}

// Creates an empty catalog which falls back to the given locale.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("bitcol: default locale %q: %w", defaultLocale, err)
	}
	return &Catalog{
		tables:        make(map[language.Tag]Table),
		defaultLocale: tag,
	}, nil
}

// Adds the translations in data, decoded with the importer for format (json, yaml, yml).
// Keys already present are overwritten.
func (c *Catalog) Add(data []byte, format string) error {
	importer, ok := TableImports[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("bitcol: no translation importer for %q", format)
	}
	nested, err := importer(data)
	if err != nil {
		return fmt.Errorf("bitcol: decoding %s translations: %w", format, err)
	}
	for locale, translations := range nested {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("bitcol: locale %q: %w", locale, err)
		}
		table := c.tables[tag]
		if table == nil {
			table = Table{}
			c.tables[tag] = table
		}
		flatten(table, "", translations)
	}
	return nil
}

// Adds the translations of a locale file, the format is taken from its extension.
func (c *Catalog) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.Add(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// The locales with translations.
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.tables))
	for tag := range c.tables {
		locales = append(locales, tag.String())
	}
	return locales
}

// Returns a translator for the locale. Keys are looked up in the locale, then each of its
// parents (en-US then en), then the default locale. An unparsable locale uses only the
// default locale.
func (c *Catalog) Translator(locale string) Translator {
	chain := []Table{}
	if tag, err := language.Parse(locale); err == nil {
		for ; tag != language.Und; tag = tag.Parent() {
			if table, ok := c.tables[tag]; ok {
				chain = append(chain, table)
			}
		}
	}
	if table, ok := c.tables[c.defaultLocale]; ok {
		chain = append(chain, table)
	}
	return localeTranslator(chain)
}

type localeTranslator []Table

func (chain localeTranslator) Lookup(key string) (string, bool) {
	for _, table := range chain {
		if text, ok := table[key]; ok {
			return text, true
		}
	}
	return "", false
}
