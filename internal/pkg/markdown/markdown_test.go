package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	out, err := ToHTML("Hello **world**")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>world</strong>")
}

func TestToHTMLEmpty(t *testing.T) {
	out, err := ToHTML("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	out, err := ToHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
