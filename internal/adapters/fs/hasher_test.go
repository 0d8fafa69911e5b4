package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/adapters/fs"
	"go.trai.ch/emorec/internal/core/domain"
)

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	require.NoError(t, os.WriteFile(a, []byte("RIFF data"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(b, []byte("RIFF other"), domain.PrivateFilePerm))

	h := fs.NewHasher()

	ha, err := h.HashFile(a)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String("RIFF data"), ha)

	again, err := h.HashFile(a)
	require.NoError(t, err)
	assert.Equal(t, ha, again)

	hb, err := h.HashFile(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
