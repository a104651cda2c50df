package srtm

import (
	"io/fs"
)

// An ElevationService returns terrain elevations for WGS84 geographic
// coordinates from a directory of HGT tiles.
type ElevationService struct {
	tileSet *TileSet
}

// NewElevationService returns a new ElevationService reading tiles
// from the root of fsys.
func NewElevationService(fsys fs.FS, options ...TileSetOption) (*ElevationService, error) {
	tileSet, err := NewTileSet(append(
		[]TileSetOption{
			WithFS(fsys),
		},
		options...,
	)...)
	if err != nil {
		return nil, err
	}
	return &ElevationService{
		tileSet: tileSet,
	}, nil
}

// Elevation returns the elevation in meters at the sample nearest to
// (lat, lng). It fails if the covering tile file is absent,
// unreadable, or not exactly one of the two legal sizes.
func (s *ElevationService) Elevation(lat, lng float64) (int16, error) {
	tile, err := s.tileSet.Tile(TileFilename(lat, lng))
	if err != nil {
		return 0, err
	}
	resolution, err := tile.Resolution()
	if err != nil {
		return 0, err
	}
	return tile.Sample(resolution, TilePixel(lat, lng, resolution))
}

// Close closes all cached tile handles.
func (s *ElevationService) Close() {
	s.tileSet.Close()
}
