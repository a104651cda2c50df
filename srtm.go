// Package srtm reads terrain elevations from a directory of SRTM HGT
// tiles.
//
// A tile is a raw, headerless, row-major grid of signed 16-bit
// big-endian elevation samples in meters covering one 1°×1° cell,
// named after its south-west corner (for example N49W002.hgt). Row 0
// is the northern edge, column 0 the western edge. The grid side is
// detected from the file size: 3601 for SRTM1 (1 arc-second, ~30 m
// spacing), 1201 for SRTM3 (3 arc-seconds, ~90 m spacing).
package srtm

import (
	"errors"
	"fmt"
)

// A Resolution is the sampling resolution of a tile, expressed as the
// side length of its square sample grid.
type Resolution int

const (
	// SRTM1 is 1 arc-second sampling.
	SRTM1 Resolution = 3601
	// SRTM3 is 3 arc-second sampling.
	SRTM3 Resolution = 1201
)

const (
	srtm1Size = 3601 * 3601 * 2
	srtm3Size = 1201 * 1201 * 2
)

var (
	// ErrUnsupportedSize is returned when a tile file's byte length
	// matches neither SRTM1 nor SRTM3.
	ErrUnsupportedSize = errors.New("file size is not SRTM1 or SRTM3 compatible")

	errShortRead = errors.New("short read")
)

// Side returns the side length of a tile grid with resolution r.
func (r Resolution) Side() int {
	return int(r)
}

func (r Resolution) String() string {
	switch r {
	case SRTM1:
		return "SRTM1"
	case SRTM3:
		return "SRTM3"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}

// ResolutionFromSize returns the resolution of a tile file from its
// byte length. Exactly two lengths are legal; any other length,
// including truncated or non-SRTM files, returns ErrUnsupportedSize.
func ResolutionFromSize(size int64) (Resolution, error) {
	switch size {
	case srtm1Size:
		return SRTM1, nil
	case srtm3Size:
		return SRTM3, nil
	default:
		return 0, fmt.Errorf("%d bytes: %w", size, ErrUnsupportedSize)
	}
}
