// Package tileset holds the tile records and shared images that map
// layers reference by id.
package tileset

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/FlavioFalcao/ebiten-tiled/property"
)

// Tile is a single tile record within a tileset.
type Tile struct {
	ID         uint8         `json:"id"`         // Tile id; 0 is reserved for "no tile"
	Bitmap     *ebiten.Image `json:"-"`          // Per-tile image, may be nil if the tileset image is used directly
	Properties property.List `json:"properties"` // Designer-authored metadata
}

// Property returns the value of the first property with the given
// name, or def if the tile is nil or has no such property. Game logic
// passes resolved (possibly absent) tiles straight in.
func (t *Tile) Property(name, def string) string {
	if t == nil {
		return def
	}
	return t.Properties.String(name, def)
}

// PropertyBool is Property with the value parsed as a bool.
func (t *Tile) PropertyBool(name string, def bool) bool {
	if t == nil {
		return def
	}
	return t.Properties.Bool(name, def)
}

// PropertyInt is Property with the value parsed as an int.
func (t *Tile) PropertyInt(name string, def int) int {
	if t == nil {
		return def
	}
	return t.Properties.Int(name, def)
}

// release frees the tile's owned resources. Safe on a tile without a
// bitmap.
func (t *Tile) release() {
	if t.Bitmap != nil {
		t.Bitmap.Deallocate()
		t.Bitmap = nil
	}
	t.Properties = nil
}

// Tileset is a named collection of tiles sliced from a shared image.
type Tileset struct {
	Name       string        `json:"name"`        // Tileset name
	Source     string        `json:"source"`      // Path of the image the parser loaded
	TileWidth  int           `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int           `json:"tile_height"` // Height of each tile in pixels
	Bitmap     *ebiten.Image `json:"-"`           // Shared tileset image
	Tiles      []*Tile       `json:"tiles"`       // Tiles in parse order

	freed bool
}

// New creates a tileset after validating its tile dimensions.
func New(name, source string, tileWidth, tileHeight int, bitmap *ebiten.Image) (*Tileset, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("tileset %s: invalid tile dimensions: %dx%d", name, tileWidth, tileHeight)
	}
	return &Tileset{
		Name:       name,
		Source:     source,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Bitmap:     bitmap,
	}, nil
}

// AddTile appends a tile, preserving parse order.
func (ts *Tileset) AddTile(t *Tile) {
	ts.Tiles = append(ts.Tiles, t)
}

// TileByID returns the first tile in this tileset with the given id.
func (ts *Tileset) TileByID(id uint8) (*Tile, bool) {
	for _, t := range ts.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TileRect returns the pixel rectangle of the tile at the given
// column and row of the tileset image.
func (ts *Tileset) TileRect(col, row int) image.Rectangle {
	x := col * ts.TileWidth
	y := row * ts.TileHeight
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// TileImage returns the sub-image for the tile at the given column
// and row, or nil if the tileset has no image.
func (ts *Tileset) TileImage(col, row int) *ebiten.Image {
	if ts.Bitmap == nil {
		return nil
	}
	return ts.Bitmap.SubImage(ts.TileRect(col, row)).(*ebiten.Image)
}

// Free releases every tile and then the shared image. The tileset is
// the single owner of its tiles, so this is where tiles reachable
// through a map's id index get released. A second call is a no-op.
func (ts *Tileset) Free() {
	if ts.freed {
		return
	}
	ts.freed = true

	for _, t := range ts.Tiles {
		t.release()
	}
	ts.Tiles = nil

	if ts.Bitmap != nil {
		ts.Bitmap.Deallocate()
		ts.Bitmap = nil
	}
}
