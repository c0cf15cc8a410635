package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayScan(t *testing.T) {
	cases := []struct {
		in   interface{}
		want StringArray
	}{
		{nil, StringArray{}},
		{"", StringArray{}},
		{"null", StringArray{}},
		{`["Go","Vue"]`, StringArray{"Go", "Vue"}},
		{[]byte(`["Go"]`), StringArray{"Go"}},
		{`"Go, React"`, StringArray{"Go", "React"}},
		{"Go, React,,", StringArray{"Go", "React"}},
	}
	for _, tc := range cases {
		var got StringArray
		require.NoError(t, got.Scan(tc.in), "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	var bad StringArray
	assert.Error(t, bad.Scan(42))
	assert.Error(t, bad.Scan(`["unterminated`))
}

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringArray{"Go"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Go"]`, v)
}

func TestSyncAliases(t *testing.T) {
	p := ProjectModel{Image: "i", DemoURL: "d", Tags: StringArray{"Go"}}
	p.SyncAliases()
	assert.Equal(t, "i", p.ImageURL)
	assert.Equal(t, "d", p.LiveURL)
	assert.Equal(t, StringArray{"Go"}, p.Technologies)

	p = ProjectModel{ImageURL: "a", Image: "b", Technologies: StringArray{"Rust"}, Tags: StringArray{"Go"}}
	p.SyncAliases()
	assert.Equal(t, "a", p.Image)
	assert.Equal(t, StringArray{"Rust"}, p.Tags)
}
