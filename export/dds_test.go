package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDDS3DTexture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "volume.dds")

	data, _, _ := PackVolume([]float64{-1, 0, 1, 2, -2, 3, 0, 1}, Options{})
	require.NoError(t, SaveDDS3DTexture(path, data, 2, 2, 2, 8))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	// 4-byte magic + 124-byte header, then the samples.
	assert.Equal(t, 128+len(data), len(written))
	assert.Equal(t, []byte{0x44, 0x44, 0x53, 0x20}, written[:4])
}

func TestSaveDDS3DTextureRejectsBadBits(t *testing.T) {
	err := SaveDDS3DTexture(filepath.Join(t.TempDir(), "x.dds"), nil, 1, 1, 1, 12)
	assert.Error(t, err)
}
