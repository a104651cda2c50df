package srtm

import (
	"fmt"
	"math"
)

// A Pixel is a zero-based sample index within a tile. X increases
// eastward from the western edge, Y increases southward from the
// northern edge.
type Pixel struct {
	X int
	Y int
}

// TileFilename returns the name of the HGT tile containing the given
// coordinate, for example "N49W002.hgt". The name encodes the
// integer-degree south-west corner of the 1°×1° cell. Longitude 180 is
// classified west, and negative zero behaves as zero. Out-of-range
// coordinates are not rejected; they produce a name that will not
// resolve to an existing file.
func TileFilename(lat, lng float64) string {
	ns := 'S'
	if lat >= 0 {
		ns = 'N'
	}
	ew := 'W'
	if lng >= 0 && lng < 180 {
		ew = 'E'
	}
	latDeg := int(math.Abs(math.Floor(lat)))
	lngDeg := int(math.Abs(math.Floor(lng)))
	return fmt.Sprintf("%c%02d%c%03d.hgt", ns, latDeg, ew, lngDeg)
}

// TilePixel returns the grid index of the sample nearest to the
// coordinate within its tile at resolution res. Rounding is half away
// from zero, so the same sample is returned for every position within
// half a sample spacing of it.
func TilePixel(lat, lng float64, res Resolution) Pixel {
	side := float64(res.Side() - 1)
	x := math.Round((lng - math.Floor(lng)) * side)
	y := side - math.Round((lat-math.Floor(lat))*side)
	return Pixel{X: int(x), Y: int(y)}
}
