package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileFormat(t *testing.T) {
	testCases := []struct {
		filename    string
		expected    FileFormat
		wantErr     bool
		description string
	}{
		{"words.txt", FormatText, false, "text"},
		{"WORDS.TXT", FormatText, false, "uppercase extension"},
		{"words.lst", FormatText, false, "list"},
		{"words.msgpack", FormatMsgpack, false, "msgpack"},
		{"words.mpk", FormatMsgpack, false, "short msgpack"},
		{"words.bin", FormatUnknown, true, "unsupported"},
		{"words", FormatUnknown, true, "no extension"},
	}

	for _, tc := range testCases {
		format, err := DetectFileFormat(tc.filename)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tc.description)
		} else {
			assert.NoError(t, err, tc.description)
		}
		assert.Equal(t, tc.expected, format, tc.description)
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\r\nCow\n\n  \nAnteater\n"), 0644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "Cow", "Anteater"}, words)
}

func TestSaveAndLoad(t *testing.T) {
	words := []string{"cat", "Cow", "zzz", "zzz"}

	for _, name := range []string{"vocab.txt", "vocab.msgpack"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, words))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, words, loaded)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveUnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "vocab.bin"), []string{"cat"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSaveTextRefusesUnrepresentable(t *testing.T) {
	testCases := []struct {
		word        string
		description string
	}{
		{"   ", "whitespace only"},
		{"", "empty"},
		{"two\nlines", "line break"},
		{"cat\r", "trailing carriage return"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vocab.txt")
			require.NoError(t, os.WriteFile(path, []byte("dog\n"), 0644))

			err := Save(path, []string{"cat", tc.word})
			assert.ErrorIs(t, err, ErrNotRepresentable)

			kept, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"dog"}, kept, "existing file is left alone")
		})
	}
}

func TestSaveMsgpackKeepsAnyCandidate(t *testing.T) {
	words := []string{"cat", "   ", "two\nlines", "cat\r"}
	path := filepath.Join(t.TempDir(), "vocab.msgpack")
	require.NoError(t, Save(path, words))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, words, loaded)
}

func TestSaveReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	for _, name := range []string{"vocab.txt", "vocab.msgpack"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.Symlink("/dev/full", path))

			assert.Error(t, Save(path, []string{"cat", "dog"}))
		})
	}
}
