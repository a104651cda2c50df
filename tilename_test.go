package srtm_test

import (
	"fmt"
	"math"
	"regexp"
	"testing"

	"github.com/alecthomas/assert/v2"

	srtm "github.com/suprasteel/easy-srtm"
)

var negZero = math.Copysign(0, -1)

func TestTileFilename(t *testing.T) {
	for _, tc := range []struct {
		lat      float64
		lng      float64
		expected string
	}{
		{lat: 49.0, lng: -2.0, expected: "N49W002.hgt"},
		{lat: 49.4, lng: -1.3, expected: "N49W002.hgt"},
		{lat: 50.9, lng: 1.7, expected: "N50E001.hgt"},
		{lat: -50.9, lng: 1.7, expected: "S51E001.hgt"},
		{lat: 0.0, lng: -0.1, expected: "N00W001.hgt"},
		{lat: negZero, lng: 0.1, expected: "N00E000.hgt"},
		{lat: 0.1, lng: negZero, expected: "N00E000.hgt"},
		{lat: -0.1, lng: 0.0, expected: "S01E000.hgt"},
		{lat: 0.0, lng: negZero, expected: "N00E000.hgt"},
		{lat: negZero, lng: 0.0, expected: "N00E000.hgt"},
		{lat: 45.0, lng: 179.0, expected: "N45E179.hgt"},
		{lat: 45.0, lng: 180.0, expected: "N45W180.hgt"},
		{lat: 45.0, lng: 179.9, expected: "N45E179.hgt"},
		{lat: 45.0, lng: -180.0, expected: "N45W180.hgt"},
	} {
		t.Run(fmt.Sprintf("%v,%v", tc.lat, tc.lng), func(t *testing.T) {
			assert.Equal(t, tc.expected, srtm.TileFilename(tc.lat, tc.lng))
		})
	}
}

func TestTileFilename_Pattern(t *testing.T) {
	pattern := regexp.MustCompile(`^[NS]\d{2}[EW]\d{3}\.hgt$`)
	for lat := -89.0; lat <= 89.0; lat += 8.9 {
		for lng := -179.0; lng <= 179.0; lng += 17.9 {
			filename := srtm.TileFilename(lat, lng)
			if !pattern.MatchString(filename) {
				t.Fatalf("TileFilename(%v, %v) = %q, want match for %v", lat, lng, filename, pattern)
			}
			latDigits := fmt.Sprintf("%02d", int(math.Abs(math.Floor(lat))))
			lngDigits := fmt.Sprintf("%03d", int(math.Abs(math.Floor(lng))))
			assert.Equal(t, latDigits, filename[1:3])
			assert.Equal(t, lngDigits, filename[4:7])
		}
	}
}

func TestTilePixel(t *testing.T) {
	for _, tc := range []struct {
		lat      float64
		lng      float64
		res      srtm.Resolution
		expected srtm.Pixel
	}{
		{lat: 49.99972, lng: -0.99972224, res: srtm.SRTM1, expected: srtm.Pixel{X: 1, Y: 1}},
		{lat: 49.444443, lng: -0.99972224, res: srtm.SRTM1, expected: srtm.Pixel{X: 1, Y: 2000}},
		{lat: 49.02778, lng: -0.99972224, res: srtm.SRTM1, expected: srtm.Pixel{X: 1, Y: 3500}},
		{lat: 49.99972, lng: -0.027777791, res: srtm.SRTM1, expected: srtm.Pixel{X: 3500, Y: 1}},
		{lat: 49.444443, lng: -0.027777791, res: srtm.SRTM1, expected: srtm.Pixel{X: 3500, Y: 2000}},
		// south-west corner of the cell
		{lat: 49.0, lng: -1.0, res: srtm.SRTM1, expected: srtm.Pixel{X: 0, Y: 3600}},
		{lat: 49.0, lng: -1.0, res: srtm.SRTM3, expected: srtm.Pixel{X: 0, Y: 1200}},
		// approaching the north-east corner from inside the cell
		{lat: 49.9999999, lng: -0.0000001, res: srtm.SRTM1, expected: srtm.Pixel{X: 3600, Y: 0}},
		{lat: 49.5, lng: -0.5, res: srtm.SRTM3, expected: srtm.Pixel{X: 600, Y: 600}},
	} {
		t.Run(fmt.Sprintf("%v,%v,%s", tc.lat, tc.lng, tc.res), func(t *testing.T) {
			assert.Equal(t, tc.expected, srtm.TilePixel(tc.lat, tc.lng, tc.res))
		})
	}
}
