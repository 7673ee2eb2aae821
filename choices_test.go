package bitcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	choices := NewChoices([]InputOption{
		{Label: "Member", Value: "member"},
		{Label: "Manager", Value: "manager"},
		{Label: "Administrator", Value: "admin"},
		{Label: "Customer Service", Value: "customer_service"},
		{Label: "Marketing", Value: "marketing"},
	})

	tests := []struct {
		text     string
		expected string
		invalid  bool
	}{
		{text: "member", expected: "member"},
		{text: "MEMBER", expected: "member"},
		{text: "mem", expected: "member"},
		{text: "Administrator", expected: "admin"},
		{text: "adm", expected: "admin"},
		{text: "customer service", expected: "customer_service"},
		{text: "customer-service", expected: "customer_service"},
		{text: "cust", expected: "customer_service"},
		{text: "ma", invalid: true},
		{text: "man", expected: "manager"},
		{text: "", invalid: true},
		{text: "finance", invalid: true},
	}

	for _, test := range tests {
		converted, err := choices.Convert(test.text)
		if test.invalid {
			assert.ErrorIs(t, err, ErrInvalidConversion, test.text)
			continue
		}
		require.NoError(t, err, test.text)
		assert.Equal(t, test.expected, converted, test.text)
	}
}

func TestConvertAll(t *testing.T) {
	choices := NewChoices(MustCodec[uint8]("role", roleMap).MustInputOptions(nil, Filter{}))

	names, err := choices.ConvertAll([]string{"fin", "Admin", "member"})
	require.NoError(t, err)
	assert.Equal(t, []string{"finance", "admin", "member"}, names)

	_, err = choices.ConvertAll([]string{"admin", "m"})
	assert.ErrorIs(t, err, ErrInvalidConversion)
	assert.Contains(t, err.Error(), `"m"`)
}
