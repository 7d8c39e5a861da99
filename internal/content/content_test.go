package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	deck := Default()

	assert.Equal(t, "One text away from", deck.Headline)
	assert.NotEmpty(t, deck.Subheadline)
	assert.NotEmpty(t, deck.Words)
	assert.NotEmpty(t, deck.Bubbles)
	assert.NoError(t, deck.Validate())
}

func TestDefault_BubbleSides(t *testing.T) {
	for _, b := range Default().Bubbles {
		assert.Contains(t, []string{"visitor", "angel"}, b.From)
		assert.NotEmpty(t, b.Text)
	}
}

func TestLoad_MissingFileReturnsBundled(t *testing.T) {
	deck, err := Load(filepath.Join(t.TempDir(), "content.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), deck)
}

func TestLoad_OverridesLayerOverBundled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")

	override := `
headline = "Launch day for"
words = ["your startup"]
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0644))

	deck, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Launch day for", deck.Headline)
	assert.Equal(t, []string{"your startup"}, deck.Words)

	// Fields not overridden keep the bundled copy
	assert.Equal(t, Default().Subheadline, deck.Subheadline)
	assert.Equal(t, Default().Bubbles, deck.Bubbles)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	require.NoError(t, os.WriteFile(path, []byte("headline = [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	require.NoError(t, os.WriteFile(path, []byte("words = []\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "words")
}

func TestValidate(t *testing.T) {
	deck := Deck{Headline: "Hello", Words: []string{"world"}}
	assert.NoError(t, deck.Validate())

	assert.Error(t, Deck{Headline: "Hello"}.Validate())
	assert.Error(t, Deck{Words: []string{"world"}}.Validate())
}
