package bitcol

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// The template used to render Help. It is given the Help value.
var HelpTemplate = template.Must(template.New("help").Parse(`
	{{- .Name }}:
	{{ range .Lines }}
		{{ if $.Marked }}[{{ if .Selected }}x{{ else }} {{ end }}] {{ end }}{{ .Value }} (bit {{ .Position }} = {{ .Mask }}): {{ .Label }}
	{{ end }}
`))

// Describes the flags of a column for display, optionally marking the flags of a value.
type Help struct {
	// The column name.
	Name string
	// The lines to display, one per flag.
	Lines []HelpLine
	// Whether lines show a selection mark.
	Marked bool
}

// One flag of Help.
type HelpLine struct {
	Value    string
	Label    string
	Position int
	Mask     uint64
	Selected bool
}

// Builds help for the options of the codec, marking the flags set in current when it is non-nil.
func NewHelp(codec *Codec[uint64], options []InputOption, current *uint64) Help {
	help := Help{
		Name:   codec.Name(),
		Lines:  make([]HelpLine, 0, len(options)),
		Marked: current != nil,
	}
	for _, option := range options {
		position, _ := codec.Mapping().Position(option.Value)
		line := HelpLine{
			Value:    option.Value,
			Label:    option.Label,
			Position: position,
			Mask:     Bit[uint64](position),
		}
		if current != nil {
			line.Selected = codec.Contains(*current, option.Value)
		}
		help.Lines = append(help.Lines, line)
	}
	return help
}

func (h Help) get() (string, error) {
	var out bytes.Buffer
	if err := HelpTemplate.Execute(&out, h); err != nil {
		return "", fmt.Errorf("bitcol: rendering help for %s: %w", h.Name, err)
	}
	return out.String(), nil
}

// Renders the help with each flag line indented and wrapped to wrapLength, continuation
// lines are indented further by wrapIndent.
func (h Help) Format(prefixSpaces int, wrapLength int, wrapIndent int) (string, error) {
	rendered, err := h.get()
	if err != nil {
		return "", err
	}
	prefix := strings.Repeat(" ", prefixSpaces)
	indent := strings.Repeat(" ", prefixSpaces+wrapIndent)
	lines := strings.Split(rendered, "\n")
	output := make([]string, 0, len(lines))

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "\t ")
		if len(trimmed) == 0 {
			continue
		}
		if i == 0 {
			output = append(output, trimmed)
			continue
		}
		output = append(output, wrap(trimmed, prefix, indent, wrapLength)...)
	}
	return strings.Join(output, "\n"), nil
}

// Breaks text on spaces so each line, prefix included, fits in wrapLength where possible.
func wrap(text string, prefix string, indent string, wrapLength int) []string {
	if wrapLength <= 0 {
		return []string{prefix + text}
	}
	lines := []string{}
	current := prefix
	empty := true
	for _, word := range strings.Fields(text) {
		if !empty && len(current)+1+len(word) > wrapLength {
			lines = append(lines, current)
			current = indent
			empty = true
		}
		if !empty {
			current += " "
		}
		current += word
		empty = false
	}
	return append(lines, current)
}
