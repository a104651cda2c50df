package srtm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// A Tile is an open HGT file. Samples are fetched with positioned
// reads, so a single Tile can serve concurrent lookups without a
// shared cursor.
type Tile struct {
	file     fs.File
	readerAt io.ReaderAt
	filename string
}

// OpenTile opens the named tile in fsys. The opened file must support
// positioned reads.
func OpenTile(fsys fs.FS, filename string) (*Tile, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	readerAt, ok := file.(io.ReaderAt)
	if !ok {
		_ = file.Close()
		return nil, fmt.Errorf("open %s: %w", filename, errors.ErrUnsupported)
	}
	return &Tile{
		file:     file,
		readerAt: readerAt,
		filename: filename,
	}, nil
}

func (t *Tile) Close() error {
	return t.file.Close()
}

// Filename returns the name the tile was opened with.
func (t *Tile) Filename() string {
	return t.filename
}

// Resolution returns the tile's resolution, derived from its current
// byte length. The length is re-read on every call, so a tile file
// replaced on disk with one of the other legal size keeps resolving
// correctly.
func (t *Tile) Resolution() (Resolution, error) {
	info, err := t.file.Stat()
	if err != nil {
		return 0, err
	}
	return ResolutionFromSize(info.Size())
}

// Sample returns the elevation sample at p, which must lie within the
// grid for res. Sentinel values such as -32768 are returned unchanged.
func (t *Tile) Sample(res Resolution, p Pixel) (int16, error) {
	index := int64(p.X) + int64(p.Y)*int64(res.Side())
	var buf [2]byte
	switch n, err := t.readerAt.ReadAt(buf[:], 2*index); {
	case n == len(buf):
		return int16(binary.BigEndian.Uint16(buf[:])), nil
	case err != nil:
		return 0, err
	default:
		return 0, errShortRead
	}
}
