package bitcol

import (
	"fmt"
	"strings"
)

// An option of a multi-select input for a bitwise column.
type SelectOption struct {
	Label    string
	Value    string
	Selected bool
}

// Lists the column's flags for a multi-select input, marking the flags set on the field.
func (a *Accessor) Select(filter Filter) ([]SelectOption, error) {
	options, err := a.InputOptions(filter)
	if err != nil {
		return nil, err
	}
	current, _ := getInteger(a.value)
	selects := make([]SelectOption, len(options))
	for i, option := range options {
		selects[i] = SelectOption{
			Label:    option.Label,
			Value:    option.Value,
			Selected: a.column.Codec.Contains(current, option.Value),
		}
	}
	return selects, nil
}

// A map of user inputs to flag names. Matching is done ignoring punctuation and case and
// will do partial matching if only one choice is a partial match.
type Choices map[string]string

// Creates choices where each option can be entered by its raw name or its label.
func NewChoices(options []InputOption) Choices {
	choices := Choices{}
	for _, option := range options {
		choices.Add(option.Label, option.Value)
	}
	for _, option := range options {
		choices.Add(option.Value, option.Value)
	}
	return choices
}

// Adds an input and the flag name it converts to.
func (c Choices) Add(input string, name string) {
	c[Normalize(input)] = name
}

// Converts the input to a flag name OR returns an ErrInvalidConversion error.
// If input partially matches exactly one flag (normalized) then its assumed to be that flag.
func (c Choices) Convert(input string) (string, error) {
	key := Normalize(input)
	if converted, ok := c[key]; ok {
		return converted, nil
	}
	if len(key) > 0 {
		possible := map[string]struct{}{}
		for choiceKey, choiceName := range c {
			if strings.HasPrefix(choiceKey, key) {
				possible[choiceName] = struct{}{}
			}
		}
		if len(possible) == 1 {
			for name := range possible {
				return name, nil
			}
		}
	}

	return "", ErrInvalidConversion
}

// Converts every input, stopping at the first which cannot be converted.
func (c Choices) ConvertAll(inputs []string) ([]string, error) {
	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		name, err := c.Convert(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, input)
		}
		names = append(names, name)
	}
	return names, nil
}
