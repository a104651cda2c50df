package srtm_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	srtm "github.com/suprasteel/easy-srtm"
)

// writeTestTile creates a sparse tile file of the given resolution in
// dir, seeded with big-endian samples at the given pixels. Unseeded
// samples read as zero.
func writeTestTile(t *testing.T, dir, filename string, res srtm.Resolution, samples map[srtm.Pixel]int16) {
	t.Helper()
	file, err := os.Create(filepath.Join(dir, filename))
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, file.Close())
	}()
	side := int64(res.Side())
	assert.NoError(t, file.Truncate(side*side*2))
	for pixel, sample := range samples {
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], uint16(sample))
		offset := 2 * (int64(pixel.X) + int64(pixel.Y)*side)
		_, err := file.WriteAt(buf[:], offset)
		assert.NoError(t, err)
	}
}
