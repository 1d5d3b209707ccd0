package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadListNormalises(t *testing.T) {
	in := "# comment\nAlone\n  slate \r\n\n\nCRANE\n"
	got, err := ReadList(strings.NewReader(in), "test", Strict)
	require.NoError(t, err)
	assert.Equal(t, []string{"alone", "slate", "crane"}, got)
}

func TestReadListMalformedLine(t *testing.T) {
	in := "alone\nsl\xffte\ncrane\n"

	_, err := ReadList(strings.NewReader(in), "bad.txt", Strict)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad.txt", pe.Source)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, err.Error(), "bad.txt:2")

	got, err := ReadList(strings.NewReader(in), "bad.txt", Lenient)
	require.NoError(t, err)
	assert.Equal(t, []string{"alone", "", "crane"}, got)
}

func TestLoadFileUnreadable(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Strict)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	legal := filepath.Join(dir, "legal.txt")
	guessable := filepath.Join(dir, "guessable.txt")
	require.NoError(t, os.WriteFile(legal, []byte("alone\nslate\n"), 0o644))
	require.NoError(t, os.WriteFile(guessable, []byte("crane\nslate\n"), 0o644))

	bank, err := LoadFiles(legal, guessable, Strict)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "alone", "slate"}, bank.Words())
	assert.Equal(t, []string{"alone", "slate"}, bank.Legal())
	assert.Equal(t, 4, bank.Len())
	assert.True(t, bank.IsLegal("alone"))
	assert.False(t, bank.IsLegal("crane"))

	_, err = LoadFiles(legal, filepath.Join(dir, "nope.txt"), Strict)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestNewBankCopiesInput(t *testing.T) {
	legal := []string{"alone"}
	guessable := []string{"crane"}
	bank := NewBank(legal, guessable)
	legal[0], guessable[0] = "xxxxx", "yyyyy"
	assert.Equal(t, []string{"crane", "alone"}, bank.Words())
	assert.True(t, bank.IsLegal("alone"))
}

func TestLoadEmbedded(t *testing.T) {
	bank, err := LoadEmbedded()
	require.NoError(t, err)
	require.NotEmpty(t, bank.Legal())
	assert.True(t, bank.IsLegal("alone"))
	assert.Greater(t, bank.Len(), len(bank.Legal()))
	for _, w := range bank.Words() {
		assert.Len(t, w, 5, "embedded word %q", w)
	}
}
