package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDictionary(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "common-passwords.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDictionary(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     Dictionary
	}{
		{name: "single line no newline", contents: "password", want: Dictionary{"password"}},
		{name: "trailing newline", contents: "123456\npassword\n", want: Dictionary{"123456", "password"}},
		{name: "crlf endings", contents: "qwerty\r\nabc123\r\n", want: Dictionary{"qwerty", "abc123"}},
		{name: "blank lines skipped", contents: "monkey\n\n\ndragon\n", want: Dictionary{"monkey", "dragon"}},
		{name: "order preserved", contents: "c\nb\na\n", want: Dictionary{"c", "b", "a"}},
		{name: "inner spaces kept", contents: "i love you\n", want: Dictionary{"i love you"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict, err := LoadDictionary(writeDictionary(t, tt.contents))
			require.NoError(t, err)
			assert.Equal(t, tt.want, dict)
		})
	}
}

func TestLoadDictionary_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	dict, err := LoadDictionary(path)
	require.ErrorIs(t, err, ErrDictionaryUnreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
	assert.Nil(t, dict)
}

func TestLoadDictionary_Directory(t *testing.T) {
	_, err := LoadDictionary(t.TempDir())
	require.ErrorIs(t, err, ErrDictionaryUnreadable)
}

func TestLoadDictionary_Empty(t *testing.T) {
	for _, contents := range []string{"", "\n", "\r\n\r\n"} {
		_, err := LoadDictionary(writeDictionary(t, contents))
		require.ErrorIs(t, err, ErrDictionaryEmpty, "contents %q", contents)
	}
}

func TestLoadDictionary_LineTooLong(t *testing.T) {
	_, err := LoadDictionary(writeDictionary(t, strings.Repeat("a", maxLineSize+1)))
	require.ErrorIs(t, err, ErrDictionaryUnreadable)
}
