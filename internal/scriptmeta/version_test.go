package scriptmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 2, Patch: 3}, v)
	assert.Equal(t, "1.2.3", v.String())
}

func TestParseVersion_Malformed(t *testing.T) {
	bad := []string{"", "1", "1.2", "1.2.3.4", "a.b.c", "1.x.3", "1.2.-3", "1..3", " 1.2.3", "1.2.3 ", "v1.2.3"}
	for _, s := range bad {
		t.Run(s, func(t *testing.T) {
			_, err := ParseVersion(s)
			assert.ErrorIs(t, err, ErrMalformedVersion)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.9.9", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.3.0", "1.2.9", 1},
		{"0.0.1", "0.0.0", 1},
		{"10.0.0", "9.9.9", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			require.NoError(t, err)
			b, err := ParseVersion(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestVersion_Bump(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}
	assert.Equal(t, "1.2.4", v.Bump(BumpPatch).String())
	assert.Equal(t, "1.3.0", v.Bump(BumpMinor).String())
	assert.Equal(t, "2.0.0", v.Bump(BumpMajor).String())

	// bump is pure, v is untouched
	assert.Equal(t, "1.2.3", v.String())
}

func TestParseBumpKind(t *testing.T) {
	for _, s := range []string{"major", "minor", "patch"} {
		k, err := ParseBumpKind(s)
		require.NoError(t, err)
		assert.Equal(t, BumpKind(s), k)
	}
	_, err := ParseBumpKind("huge")
	assert.Error(t, err)
}
