package wikitext

import (
	gotok "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	fset := gotok.NewFileSet()
	toks, err := Tokenize(fset, "a.wiki", "{{foo}}")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "TemplateOpen", toks[0].Kind.String())
	assert.Equal(t, "TemplateClose", toks[2].Kind.String())
}

func TestTokenize_NilFileSet(t *testing.T) {
	_, err := Tokenize(nil, "a.wiki", "{{foo}}")
	require.Error(t, err)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))

	_, err := Tokenize(nil, "", "x")
	require.Error(t, err)
	assert.Contains(t, FormatError(err), "wikitext:")
}
