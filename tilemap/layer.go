// Package tilemap provides the map aggregate an external TMX parser
// assembles: layer grids with flip-flag decoding, objects, and the
// id-to-tile index used to resolve layer cells back to tile records.
package tilemap

import "fmt"

// Flip flags occupy the three most-significant bits of each stored
// layer byte; the low bits are the tile id. Id 0 is reserved and
// means "no tile here".
const (
	FlippedHorizontally uint8 = 0x80
	FlippedVertically   uint8 = 0x40
	FlippedDiagonally   uint8 = 0x20

	// TileIDMask clears all three flip flags from a raw layer byte.
	TileIDMask uint8 = 0x1F
)

// Cell is the decoded form of a single layer byte.
type Cell struct {
	ID    uint8 // Tile id with flip flags cleared; 0 means no tile
	FlipH bool  // Mirror horizontally when rendering
	FlipV bool  // Mirror vertically when rendering
	FlipD bool  // Mirror along the diagonal when rendering
}

// DecodeCell splits a raw layer byte into id and flip flags.
func DecodeCell(raw uint8) Cell {
	return Cell{
		ID:    raw & TileIDMask,
		FlipH: raw&FlippedHorizontally != 0,
		FlipV: raw&FlippedVertically != 0,
		FlipD: raw&FlippedDiagonally != 0,
	}
}

// Raw packs the cell back into the stored byte form.
func (c Cell) Raw() uint8 {
	raw := c.ID & TileIDMask
	if c.FlipH {
		raw |= FlippedHorizontally
	}
	if c.FlipV {
		raw |= FlippedVertically
	}
	if c.FlipD {
		raw |= FlippedDiagonally
	}
	return raw
}

// Layer is one grid of tile ids covering the map, stored row-major in
// the raw byte form the parser decoded from the map file.
type Layer struct {
	Name   string // Layer name
	Width  int    // Grid width in tiles
	Height int    // Grid height in tiles

	data []byte
}

// NewLayer creates a layer after validating that the data length
// matches the grid dimensions.
func NewLayer(name string, width, height int, data []byte) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layer %s: invalid dimensions: %dx%d", name, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("layer %s: data length %d doesn't match %dx%d grid", name, len(data), width, height)
	}
	return &Layer{
		Name:   name,
		Width:  width,
		Height: height,
		data:   data,
	}, nil
}

// RawTileAt returns the stored byte at (x, y), flip flags included.
// Coordinates are not bounds-checked; callers index within the grid.
func (l *Layer) RawTileAt(x, y int) uint8 {
	return l.data[x+y*l.Width]
}

// TileIDAt returns the tile id at (x, y) with the flip flags cleared.
func (l *Layer) TileIDAt(x, y int) uint8 {
	return l.RawTileAt(x, y) & TileIDMask
}

// FlippedHorizontallyAt reports whether the tile at (x, y) is flipped
// horizontally.
func (l *Layer) FlippedHorizontallyAt(x, y int) bool {
	return l.RawTileAt(x, y)&FlippedHorizontally != 0
}

// FlippedVerticallyAt reports whether the tile at (x, y) is flipped
// vertically.
func (l *Layer) FlippedVerticallyAt(x, y int) bool {
	return l.RawTileAt(x, y)&FlippedVertically != 0
}

// FlippedDiagonallyAt reports whether the tile at (x, y) is flipped
// along the diagonal.
func (l *Layer) FlippedDiagonallyAt(x, y int) bool {
	return l.RawTileAt(x, y)&FlippedDiagonally != 0
}

// CellAt returns the decoded cell at (x, y).
func (l *Layer) CellAt(x, y int) Cell {
	return DecodeCell(l.RawTileAt(x, y))
}

func (l *Layer) free() {
	l.data = nil
}
