package tilemap

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/FlavioFalcao/ebiten-tiled/logger"
	"github.com/FlavioFalcao/ebiten-tiled/tileset"
)

// Map is the root owner of a parsed tile map: tilesets, layers,
// objects, and object groups, plus a non-owning id index over every
// tile the tilesets hold.
//
// Map.Objects is the owning list of all objects; object groups hold
// references into it. The id index likewise references tiles owned by
// their tilesets, so teardown never releases through it.
type Map struct {
	Orientation  string             // "orthogonal", "isometric", ...
	Tilesets     []*tileset.Tileset // Tilesets in parse order
	Layers       []*Layer           // Layers in stacking order, bottom first
	Objects      []*Object          // All objects, owned here
	ObjectGroups []*ObjectGroup     // Groups referencing Objects
	Backbuffer   *ebiten.Image      // Prerendered map image, set by the renderer

	tiles map[uint8]*tileset.Tile
	freed bool
}

// NewMap creates an empty map for an external parser to fill.
func NewMap(orientation string) *Map {
	return &Map{
		Orientation: orientation,
		tiles:       make(map[uint8]*tileset.Tile),
	}
}

// AddTileset appends a tileset. Call BuildTileIndex once the parser
// has added every tileset.
func (m *Map) AddTileset(ts *tileset.Tileset) {
	m.Tilesets = append(m.Tilesets, ts)
}

// AddLayer appends a layer; layers stack in the order added.
func (m *Map) AddLayer(l *Layer) {
	m.Layers = append(m.Layers, l)
}

// AddObject appends an object to the map's owning list.
func (m *Map) AddObject(o *Object) {
	m.Objects = append(m.Objects, o)
}

// AddObjectGroup appends an object group.
func (m *Map) AddObjectGroup(g *ObjectGroup) {
	m.ObjectGroups = append(m.ObjectGroups, g)
}

// BuildTileIndex rebuilds the id index from the tilesets in order.
// A later tileset that reuses an id overwrites the earlier entry.
// Id 0 means "no tile" and is never indexed.
func (m *Map) BuildTileIndex() {
	m.tiles = make(map[uint8]*tileset.Tile)
	for _, ts := range m.Tilesets {
		for _, t := range ts.Tiles {
			if t.ID == 0 {
				continue
			}
			m.tiles[t.ID] = t
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"tilesets": len(m.Tilesets),
		"indexed":  len(m.tiles),
	}).Debug("built tile index")
}

// TileByID resolves a tile id to its tile record. Id 0 is always
// absent.
func (m *Map) TileByID(id uint8) (*tileset.Tile, bool) {
	if id == 0 {
		return nil, false
	}
	t, ok := m.tiles[id]
	return t, ok
}

// TileIDsAt returns the decoded tile id at (x, y) for every layer, in
// stacking order. The result has exactly one entry per layer; the
// caller owns the slice.
func (m *Map) TileIDsAt(x, y int) []uint8 {
	ids := make([]uint8, len(m.Layers))
	for i, l := range m.Layers {
		ids[i] = l.TileIDAt(x, y)
	}
	return ids
}

// CellsAt is TileIDsAt with the flip flags kept, one decoded cell per
// layer in stacking order.
func (m *Map) CellsAt(x, y int) []Cell {
	cells := make([]Cell, len(m.Layers))
	for i, l := range m.Layers {
		cells[i] = l.CellAt(x, y)
	}
	return cells
}

// LayerByName returns the first layer with the given name.
func (m *Map) LayerByName(name string) (*Layer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// ObjectGroupByName returns the first object group with the given
// name.
func (m *Map) ObjectGroupByName(name string) (*ObjectGroup, bool) {
	for _, g := range m.ObjectGroups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// Free releases every resource the map owns, each exactly once:
// tilesets (which release their tiles), layers, objects, object
// groups, then the backbuffer. The id index and the object groups
// only reference values owned elsewhere, so they are dropped without
// releasing anything through them. A second call is a no-op, and
// queries on a freed map return absent results rather than crashing.
func (m *Map) Free() {
	if m == nil || m.freed {
		return
	}
	m.freed = true

	for _, ts := range m.Tilesets {
		ts.Free()
	}
	m.Tilesets = nil

	for _, l := range m.Layers {
		l.free()
	}
	m.Layers = nil

	for _, o := range m.Objects {
		o.free()
	}
	m.Objects = nil
	m.ObjectGroups = nil

	// Non-owning index: drop the references, never the values.
	m.tiles = nil

	if m.Backbuffer != nil {
		m.Backbuffer.Deallocate()
		m.Backbuffer = nil
	}

	logger.Log.Debug("map freed")
}
