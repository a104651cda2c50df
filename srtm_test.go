package srtm_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	srtm "github.com/suprasteel/easy-srtm"
)

func TestResolutionFromSize(t *testing.T) {
	res, err := srtm.ResolutionFromSize(3601 * 3601 * 2)
	assert.NoError(t, err)
	assert.Equal(t, srtm.SRTM1, res)
	assert.Equal(t, 3601, res.Side())

	res, err = srtm.ResolutionFromSize(1201 * 1201 * 2)
	assert.NoError(t, err)
	assert.Equal(t, srtm.SRTM3, res)
	assert.Equal(t, 1201, res.Side())
}

func TestResolutionFromSize_UnsupportedSizes(t *testing.T) {
	for _, size := range []int64{
		0,
		1,
		2,
		1201*1201*2 - 2,
		1201*1201*2 + 2,
		3601 * 3601,
		3601*3601*2 - 1,
		3601*3601*2 + 1,
		1 << 40,
	} {
		_, err := srtm.ResolutionFromSize(size)
		assert.True(t, errors.Is(err, srtm.ErrUnsupportedSize))
	}
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "SRTM1", srtm.SRTM1.String())
	assert.Equal(t, "SRTM3", srtm.SRTM3.String())
}
