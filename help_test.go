package bitcol

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFormat(t *testing.T) {
	codec := MustCodec[uint64]("role", roleMap)
	options := codec.MustInputOptions(nil, Filter{Only: []string{"admin", "finance", "marketing"}})

	current := uint64(12)
	marked, err := NewHelp(codec, options, &current).Format(2, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, "role:\n"+
		"  [x] admin (bit 3 = 4): Admin\n"+
		"  [x] finance (bit 4 = 8): Finance\n"+
		"  [ ] marketing (bit 5 = 16): Marketing", marked)

	plain, err := NewHelp(codec, options[:1], nil).Format(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "role:\nadmin (bit 3 = 4): Admin", plain)
}

func TestHelpTemplateError(t *testing.T) {
	defer func(original *template.Template) { HelpTemplate = original }(HelpTemplate)
	HelpTemplate = template.Must(template.New("help").Parse(`{{ .Missing }}`))

	codec := MustCodec[uint64]("role", roleMap)
	help := NewHelp(codec, codec.MustInputOptions(nil, Filter{}), nil)
	_, err := help.Format(0, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering help for role")
}

func TestHelpWrap(t *testing.T) {
	assert.Equal(t, []string{"  aaa bbb", "      ccc"}, wrap("aaa bbb ccc", "  ", "      ", 9))
	assert.Equal(t, []string{"  averylongword", "      x"}, wrap("averylongword x", "  ", "      ", 5))
	assert.Equal(t, []string{"> a b c"}, wrap("a b c", "> ", "", 0))
}
