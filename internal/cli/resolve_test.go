package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRef(t *testing.T) {
	refs := []ref{
		{ID: "aaa111", Name: "Rent"},
		{ID: "aab222", Name: "Internet"},
		{ID: "bbb333", Name: "Power"},
	}

	id, err := resolveRef("bill", "bbb333", refs)
	require.NoError(t, err)
	assert.Equal(t, "bbb333", id)

	id, err = resolveRef("bill", "bbb", refs)
	require.NoError(t, err)
	assert.Equal(t, "bbb333", id)

	id, err = resolveRef("bill", "internet", refs)
	require.NoError(t, err)
	assert.Equal(t, "aab222", id)

	_, err = resolveRef("bill", "aa", refs)
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveRef("bill", "zzz", refs)
	assert.ErrorContains(t, err, "not found")

	_, err = resolveRef("bill", "", refs)
	assert.ErrorContains(t, err, "required")
}

func TestResolveRefPrefersExactIDOverPrefix(t *testing.T) {
	refs := []ref{
		{ID: "abc", Name: "Short"},
		{ID: "abcdef", Name: "Long"},
	}

	id, err := resolveRef("record", "abc", refs)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}
