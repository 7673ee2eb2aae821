package bitcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roleMap = MustFlagMap("member:1,manager:2,admin:3,finance:4,marketing:5")

func newRoleCodec(t *testing.T) *Codec[int] {
	codec, err := NewCodec[int]("role", roleMap)
	require.NoError(t, err)
	return codec
}

func TestCodecNormalize(t *testing.T) {
	codec := newRoleCodec(t)

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "single", input: []string{"admin"}, expected: []string{"admin"}},
		{name: "unique", input: []string{"admin", "admin"}, expected: []string{"admin"}},
		{name: "sorted by position", input: []string{"admin", "member"}, expected: []string{"member", "admin"}},
		{name: "empty", input: nil, expected: []string{}},
		{name: "keeps invalid", input: []string{"admin", "invalid_role"}, expected: []string{"admin", "invalid_role"}},
		{name: "invalid last", input: []string{"zzz", "marketing", "aaa", "member"}, expected: []string{"member", "marketing", "zzz", "aaa"}},
		{name: "first wins", input: []string{"finance", "member", "finance", "member"}, expected: []string{"member", "finance"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, codec.Normalize(test.input...))
		})
	}
}

func TestCodecNormalizeSparsePositions(t *testing.T) {
	codec := MustCodec[uint32]("sparse", MustFlagMap("high:20,low:2"))

	assert.Equal(t, []string{"low", "high", "unknown"}, codec.Normalize("unknown", "high", "low"))
}

func TestCodecIsValid(t *testing.T) {
	codec := newRoleCodec(t)

	assert.True(t, codec.IsValid("member"))
	assert.True(t, codec.IsValid("admin", "member"))
	assert.True(t, codec.IsValid())
	assert.True(t, codec.IsValid(NamesOf(nil)...))
	assert.False(t, codec.IsValid("invalid_role"))
	assert.False(t, codec.IsValid("member", "invalid_role"))
}

func TestCodecDecode(t *testing.T) {
	codec := newRoleCodec(t)

	assert.Equal(t, []string{"member", "manager", "admin"}, codec.Decode(7))
	assert.Equal(t, []string{"admin", "finance"}, codec.Decode(12))
	assert.Equal(t, []string{}, codec.Decode(0))
	assert.Equal(t, []string{}, codec.DecodeOptional(nil))

	value := 12
	assert.Equal(t, []string{"admin", "finance"}, codec.DecodeOptional(&value))
}

func TestCodecDecodeDeclarationOrder(t *testing.T) {
	codec := MustCodec[uint8]("unordered", MustFlagMap("c:3,a:1,b:2"))

	assert.Equal(t, []string{"c", "a", "b"}, codec.Decode(7))
	assert.Equal(t, []string{"a", "b", "c"}, codec.Normalize(codec.Decode(7)...))
}

func TestCodecEncode(t *testing.T) {
	codec := newRoleCodec(t)

	assert.Equal(t, 7, codec.Encode("member", "manager", "admin"))
	assert.Equal(t, 12, codec.Encode("admin", "finance"))
	assert.Equal(t, 0, codec.Encode())
	assert.Equal(t, 0, codec.Encode(NamesOf(nil)...))
	assert.Equal(t, 4, codec.Encode("admin", "invalid_role"))
}

func TestCodecRoundTrip(t *testing.T) {
	codec := newRoleCodec(t)

	for value := 0; value < 32; value++ {
		names := codec.Decode(value)
		assert.Equal(t, value, codec.Encode(names...))
		assert.Equal(t, codec.Normalize(names...), codec.Decode(codec.Encode(codec.Normalize(names...)...)))
	}

	// undeclared bits are dropped
	assert.Equal(t, 5, codec.Encode(codec.Decode(64|5)...))
}

func TestCodecAssign(t *testing.T) {
	codec := newRoleCodec(t)

	tests := []struct {
		current  int
		input    any
		expected int
	}{
		{current: 8, input: []any{"admin", "member", "admin"}, expected: 5},
		{current: 5, input: []string{"member"}, expected: 1},
		{current: 1, input: []string{"admin", "finance"}, expected: 12},
		{current: 1, input: "admin", expected: 4},
		{current: 4, input: "member", expected: 1},
		{current: 1, input: "finance", expected: 8},
		{current: 8, input: "invalid_role", expected: 8},
		{current: 8, input: []string{"admin", "invalid_role"}, expected: 8},
		{current: 8, input: nil, expected: 0},
	}

	for _, test := range tests {
		actual := codec.Assign(test.current, NamesOf(test.input)...)
		assert.Equal(t, test.expected, actual, "assign %v to %d", test.input, test.current)
	}
}

func TestCodecAppend(t *testing.T) {
	codec := newRoleCodec(t)

	value := codec.Append(8, "member", "marketing", "admin")
	assert.Equal(t, 29, value)
	value = codec.Append(value, "manager", "admin")
	assert.Equal(t, 31, value)

	value = codec.Append(1, "admin")
	assert.Equal(t, 5, value)
	value = codec.Append(value, "member")
	assert.Equal(t, 5, value)
	value = codec.Append(value, "finance")
	assert.Equal(t, 13, value)

	assert.Equal(t, 8, codec.Append(8, "invalid_role"))
	assert.Equal(t, 8, codec.Append(8, "member", "invalid_role"))
	assert.Equal(t, 8, codec.Append(8))
}

func TestCodecContains(t *testing.T) {
	codec := newRoleCodec(t)

	assert.True(t, codec.Contains(5, "admin"))
	assert.False(t, codec.Contains(5, "manager"))
	assert.True(t, codec.Contains(13, "admin", "finance"))
	assert.False(t, codec.Contains(13, "manager", "admin"))
	assert.False(t, codec.Contains(31, "invalid_role"))
	assert.True(t, codec.Contains(0))

	assert.True(t, codec.ContainsSet([]string{"admin", "member"}, "admin"))
	assert.False(t, codec.ContainsSet([]string{"admin", "member"}, "manager"))
	assert.True(t, codec.ContainsSet([]string{"admin", "member", "finance"}, "admin", "finance"))
	assert.False(t, codec.ContainsSet([]string{"admin", "member", "finance"}, "manager", "admin"))
	assert.True(t, codec.ContainsSet(nil))
}

func TestCodecSynonyms(t *testing.T) {
	codec := MustCodec[uint16]("status", MustFlagMap("active:1,enabled:1,hidden:2"))

	assert.Equal(t, 1, int(codec.Encode("enabled")))
	assert.Equal(t, []string{"active", "enabled"}, codec.Decode(1))
	assert.True(t, codec.Contains(1, "active"))
	assert.Equal(t, uint16(3), codec.Mask())
}

func TestCodecWidth(t *testing.T) {
	_, err := NewCodec[uint8]("small", MustFlagMap("a:8"))
	assert.NoError(t, err)

	_, err = NewCodec[uint8]("small", MustFlagMap("a:9"))
	assert.ErrorIs(t, err, ErrInvalidFlagMap)

	signed := MustCodec[int64]("wide", MustFlagMap("low:1,top:64"))
	value := signed.Encode("low", "top")
	assert.True(t, value < 0)
	assert.Equal(t, []string{"low", "top"}, signed.Decode(value))
}

func TestCodecInputOptions(t *testing.T) {
	codec := newRoleCodec(t)

	options, err := codec.InputOptions(nil, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []InputOption{
		{Label: "Member", Value: "member"},
		{Label: "Manager", Value: "manager"},
		{Label: "Admin", Value: "admin"},
		{Label: "Finance", Value: "finance"},
		{Label: "Marketing", Value: "marketing"},
	}, options)

	options, err = codec.InputOptions(nil, Filter{Only: []string{"marketing", "admin"}})
	require.NoError(t, err)
	assert.Equal(t, []InputOption{
		{Label: "Admin", Value: "admin"},
		{Label: "Marketing", Value: "marketing"},
	}, options)

	options, err = codec.InputOptions(nil, Filter{Except: []string{"member", "finance"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"manager", "admin", "marketing"}, optionValues(options))

	options, err = codec.InputOptions(nil, Filter{Only: []string{}})
	require.NoError(t, err)
	assert.Empty(t, options)

	_, err = codec.InputOptions(nil, Filter{Only: []string{"admin"}, Except: []string{"member"}})
	assert.ErrorIs(t, err, ErrOnlyAndExcept)

	assert.Panics(t, func() {
		codec.MustInputOptions(nil, Filter{Only: []string{}, Except: []string{}})
	})
}

func TestCodecInputOptionsLabels(t *testing.T) {
	codec := newRoleCodec(t)
	resolver := NewResolver("User", "role", Table{"bitwise_column.user.role.admin": "Administrator"})

	options := codec.MustInputOptions(resolver, Filter{Only: []string{"admin", "finance"}})
	assert.Equal(t, []InputOption{
		{Label: "Administrator", Value: "admin"},
		{Label: "Finance", Value: "finance"},
	}, options)
}

func TestCodecMatch(t *testing.T) {
	codec := newRoleCodec(t)

	admins := codec.Match("admin")
	assert.True(t, FlagsOf(29).Is(admins))
	assert.False(t, FlagsOf(3).Is(admins))
	assert.True(t, FlagsOf(3).Is(MatchOr(admins, codec.Match("manager"))))
	assert.False(t, FlagsOf(31).Is(codec.Match("invalid_role")))
}

func TestCodecMatchQueries(t *testing.T) {
	codec := newRoleCodec(t)
	tests := []struct {
		name     string
		match    Match[int]
		expected bool
	}{
		{name: "any", match: codec.MatchAny("manager", "admin"), expected: true},
		{name: "any unset", match: codec.MatchAny("manager", "marketing"), expected: false},
		{name: "any undeclared", match: codec.MatchAny("invalid_role"), expected: false},
		{name: "none", match: codec.MatchNone("manager", "marketing"), expected: true},
		{name: "none set", match: codec.MatchNone("admin"), expected: false},
		{name: "only", match: codec.MatchOnly("member", "admin", "finance", "marketing"), expected: true},
		{name: "only missing", match: codec.MatchOnly("member", "admin"), expected: false},
		{name: "exact", match: codec.MatchExact("finance", "admin", "member"), expected: true},
		{name: "exact subset", match: codec.MatchExact("admin", "member"), expected: false},
		{name: "exact undeclared", match: codec.MatchExact("member", "admin", "finance", "invalid_role"), expected: false},
		{name: "not", match: MatchNot(codec.MatchAny("manager")), expected: true},
		{name: "and", match: MatchAnd(codec.Match("admin"), codec.MatchNone("manager")), expected: true},
		{name: "or", match: MatchOr(codec.Match("manager"), codec.MatchExact("member")), expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, FlagsOf(13).Is(test.match))
		})
	}
}

func optionValues(options []InputOption) []string {
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}
	return values
}
