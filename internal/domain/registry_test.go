package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, data string) *Registry {
	t.Helper()
	reg, err := DecodeRegistry([]byte(data))
	require.NoError(t, err)
	return reg
}

func encodedString(t *testing.T, reg *Registry) string {
	t.Helper()
	data, err := reg.Encode()
	require.NoError(t, err)
	return string(data)
}

func TestRegistryAppend(t *testing.T) {
	t.Run("appends to existing chain", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA"]}`)
		require.NoError(t, reg.Append(1, "0xB"))
		assert.Equal(t, []string{"0xA", "0xB"}, reg.Addresses(1))
	})

	t.Run("creates list for new chain", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA"]}`)
		require.NoError(t, reg.Append(56, "0xC"))
		assert.Equal(t, []string{"0xA"}, reg.Addresses(1))
		assert.Equal(t, []string{"0xC"}, reg.Addresses(56))
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		reg := NewRegistry()
		require.NoError(t, reg.Append(1, "0xA"))
		require.NoError(t, reg.Append(1, "0xA"))
		assert.Equal(t, []string{"0xA", "0xA"}, reg.Addresses(1))
		assert.Equal(t, 2, reg.Total())
	})

	t.Run("falsy entry starts a new list", func(t *testing.T) {
		for _, value := range []string{`null`, `false`, `0`, `""`} {
			reg := mustDecode(t, `{"1": `+value+`}`)
			require.NoError(t, reg.Append(1, "0xA"), value)
			assert.Equal(t, []string{"0xA"}, reg.Addresses(1), value)
		}
	})

	t.Run("non-list entry on the current chain", func(t *testing.T) {
		for _, value := range []string{`"0xA"`, `{"a": 1}`, `true`, `5`} {
			reg := mustDecode(t, `{"1": `+value+`}`)
			assert.ErrorIs(t, reg.Append(1, "0xB"), ErrInvalidRegistry, value)
		}
	})

	t.Run("keeps non-string elements of the current chain", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA", null, 7]}`)
		require.NoError(t, reg.Append(1, "0xB"))
		assert.Equal(t, "{\n  \"1\": [\n    \"0xA\",\n    null,\n    7,\n    \"0xB\"\n  ]\n}", encodedString(t, reg))
	})
}

func TestRegistryUntouchedEntries(t *testing.T) {
	t.Run("non-list keys survive", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA"], "updatedAt": "2023-01-01", "meta": {"owner": "<ops>"}}`)
		require.NoError(t, reg.Append(56, "0xC"))
		assert.Equal(t, `{
  "1": [
    "0xA"
  ],
  "56": [
    "0xC"
  ],
  "updatedAt": "2023-01-01",
  "meta": {
    "owner": "<ops>"
  }
}`, encodedString(t, reg))
	})

	t.Run("null elements on other chains survive", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA", null]}`)
		require.NoError(t, reg.Append(56, "0xC"))
		assert.Equal(t, "{\n  \"1\": [\n    \"0xA\",\n    null\n  ],\n  \"56\": [\n    \"0xC\"\n  ]\n}", encodedString(t, reg))
		assert.Equal(t, []string{"0xA", "null"}, reg.Addresses(1))
	})
}

func TestRegistryKeys(t *testing.T) {
	reg := mustDecode(t, `{"137": [], "mainnet": [], "56": [], "1": [], "01": [], "4294967295": []}`)

	// Index keys ascending, then everything else in file order
	assert.Equal(t, []string{"1", "56", "137", "mainnet", "01", "4294967295"}, reg.Keys())
	assert.Equal(t, []uint64{1, 56, 137, 4294967295}, reg.ChainIDs())
}

func TestRegistryEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    `{}`,
			expected: "{}",
		},
		{
			name:     "single chain",
			input:    `{"1":["0xA","0xB"]}`,
			expected: "{\n  \"1\": [\n    \"0xA\",\n    \"0xB\"\n  ]\n}",
		},
		{
			name:     "numeric key order",
			input:    `{"56":["0xC"],"1":["0xA"]}`,
			expected: "{\n  \"1\": [\n    \"0xA\"\n  ],\n  \"56\": [\n    \"0xC\"\n  ]\n}",
		},
		{
			name:     "empty list",
			input:    `{"10": []}`,
			expected: "{\n  \"10\": []\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodedString(t, mustDecode(t, tt.input)))
		})
	}
}

func TestDecodeRegistry(t *testing.T) {
	t.Run("object of lists", func(t *testing.T) {
		reg := mustDecode(t, `{"1": ["0xA"], "56": []}`)
		assert.Equal(t, []string{"0xA"}, reg.Addresses(1))
		assert.Empty(t, reg.Addresses(56))
	})

	t.Run("null is empty", func(t *testing.T) {
		reg := mustDecode(t, `null`)
		require.NoError(t, reg.Append(1, "0xA"))
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("duplicate key keeps first position and last value", func(t *testing.T) {
		reg := mustDecode(t, `{"x": 1, "y": 2, "x": 3}`)
		assert.Equal(t, "{\n  \"x\": 3,\n  \"y\": 2\n}", encodedString(t, reg))
	})

	tests := map[string]string{
		"array":         `["0xA"]`,
		"string":        `"0xA"`,
		"truncated":     `{"1": [`,
		"trailing data": `{} {}`,
		"empty":         ``,
	}
	for name, input := range tests {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := DecodeRegistry([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestRegistryClone(t *testing.T) {
	reg := mustDecode(t, `{"1": ["0xA"]}`)
	clone := reg.Clone()
	require.NoError(t, clone.Append(1, "0xB"))
	assert.Equal(t, []string{"0xA"}, reg.Addresses(1))
}

func TestRegistryFilter(t *testing.T) {
	reg := mustDecode(t, `{"1": ["0xA"], "56": ["0xC"]}`)
	assert.Equal(t, []string{"56"}, reg.Filter(56).Keys())
	assert.Zero(t, reg.Filter(10).Len())
}

func TestPancakeswapV2Adapter(t *testing.T) {
	spec := PancakeswapV2Adapter()
	assert.Equal(t, "PancakeswapAdapter", spec.Contract)
	assert.Equal(t, []string{
		"Pancakeswap V2",
		"0x02a84c1b3BBD7401a5f7fa98a384EBC70bB5749E",
		"25",
		"215000",
	}, spec.Values())
}
