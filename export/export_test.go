package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackVolumeEmpty(t *testing.T) {
	data, min, max := PackVolume(nil, Options{})
	assert.Nil(t, data)
	assert.Equal(t, float32(0), min)
	assert.Equal(t, float32(0), max)
}

func TestPackVolume8Bit(t *testing.T) {
	phi := []float64{-2, -1, 0, 1, 2}
	data, min, max := PackVolume(phi, Options{})

	require.Len(t, data, len(phi))
	assert.Equal(t, float32(-2), min)
	assert.Equal(t, float32(2), max)

	// first sample is the most negative value -> floors to 0.
	assert.Equal(t, uint8(0), data[0])
	// last sample is the most positive value -> ceils to 255.
	assert.Equal(t, uint8(255), data[len(data)-1])
}

func TestPackVolume16Bit(t *testing.T) {
	phi := []float64{-1, 0, 1}
	data, _, _ := PackVolume(phi, Options{Bits16: true})
	require.Len(t, data, len(phi)*2)
}

func TestPackVolumeLogMode(t *testing.T) {
	phi := []float64{-5, -1, 0, 1, 5}
	data, _, _ := PackVolume(phi, Options{Log: true})
	require.Len(t, data, len(phi))
	// monotonic: further-negative/positive samples pack to more extreme bytes.
	assert.LessOrEqual(t, data[0], data[1])
	assert.LessOrEqual(t, data[3], data[4])
}
