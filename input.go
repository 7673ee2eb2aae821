package bitcol

import "golang.org/x/exp/slices"

// A label and raw flag name pair, as offered to a select input.
type InputOption struct {
	Label string
	Value string
}

// Restricts the flags listed as input options. Only keeps exactly the named flags and
// Except drops the named flags, setting both is a programming error.
type Filter struct {
	Only   []string
	Except []string
}

// Returns the flags which pass the filter in declaration order.
func (f Filter) Apply(keys []string) ([]string, error) {
	if f.Only != nil && f.Except != nil {
		return nil, ErrOnlyAndExcept
	}
	kept := make([]string, 0, len(keys))
	for _, key := range keys {
		switch {
		case f.Only != nil && !slices.Contains(f.Only, key):
			continue
		case f.Except != nil && slices.Contains(f.Except, key):
			continue
		}
		kept = append(kept, key)
	}
	return kept, nil
}

// Lists the declared flags which pass the filter paired with their labels. A nil resolver
// labels every flag with Humanize.
func (c *Codec[T]) InputOptions(resolver *Resolver, filter Filter) ([]InputOption, error) {
	keys, err := filter.Apply(c.flags.Keys())
	if err != nil {
		return nil, err
	}
	options := make([]InputOption, len(keys))
	for i, key := range keys {
		options[i] = InputOption{
			Label: resolver.Translate(key),
			Value: key,
		}
	}
	return options, nil
}

// Lists input options or panics on an invalid filter.
func (c *Codec[T]) MustInputOptions(resolver *Resolver, filter Filter) []InputOption {
	options, err := c.InputOptions(resolver, filter)
	if err != nil {
		panic(err)
	}
	return options
}
