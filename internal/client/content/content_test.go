package content

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_File(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/notes/card.md", []byte("# Title\n\nbody\n"), 0o600))

	r := &Reader{FS: mem, Stdin: iotest.ErrReader(errors.New("stdin must not be touched"))}
	got, err := r.Read("/notes/card.md")

	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", got)
}

func TestReader_MissingFile(t *testing.T) {
	r := &Reader{FS: afero.NewMemMapFs()}

	_, err := r.Read("missing.md")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "could not read missing.md")
}

func TestReader_Stdin(t *testing.T) {
	// OneByteReader makes sure the whole stream is consumed, not one chunk.
	r := &Reader{FS: afero.NewMemMapFs(), Stdin: iotest.OneByteReader(strings.NewReader("Card body"))}

	got, err := r.Read("")

	require.NoError(t, err)
	assert.Equal(t, "Card body", got)
}

func TestReader_StdinFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &Reader{Stdin: iotest.ErrReader(boom)}

	_, err := r.Read("")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadStdin)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "could not read stdin: boom", err.Error())
}
