package tilemap

import (
	"testing"

	"github.com/FlavioFalcao/ebiten-tiled/property"
	"github.com/FlavioFalcao/ebiten-tiled/tileset"
)

func mustLayer(t *testing.T, name string, w, h int, data []byte) *Layer {
	t.Helper()
	l, err := NewLayer(name, w, h, data)
	if err != nil {
		t.Fatalf("layer %s: %v", name, err)
	}
	return l
}

func mustTileset(t *testing.T, name string) *tileset.Tileset {
	t.Helper()
	ts, err := tileset.New(name, name+".png", 16, 16, nil)
	if err != nil {
		t.Fatalf("tileset %s: %v", name, err)
	}
	return ts
}

func TestTileIDsAt(t *testing.T) {
	m := NewMap("orthogonal")
	m.AddLayer(mustLayer(t, "ground", 2, 2, []byte{1, 2, 3, 4}))
	m.AddLayer(mustLayer(t, "walls", 2, 2, []byte{0, 5 | FlippedHorizontally, 0, 6}))
	m.AddLayer(mustLayer(t, "deco", 2, 2, []byte{7 | FlippedVertically, 0, 0, 0}))

	ids := m.TileIDsAt(1, 0)
	if len(ids) != 3 {
		t.Fatalf("expected one id per layer, got %d", len(ids))
	}
	want := []uint8{2, 5, 0}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("layer %d: expected id %d, got %d", i, id, ids[i])
		}
		if ids[i] != m.Layers[i].TileIDAt(1, 0) {
			t.Errorf("layer %d: TileIDsAt disagrees with TileIDAt", i)
		}
	}

	cells := m.CellsAt(1, 0)
	if len(cells) != 3 {
		t.Fatalf("expected one cell per layer, got %d", len(cells))
	}
	if cells[1].ID != 5 || !cells[1].FlipH {
		t.Errorf("expected flipped id 5 on layer 1, got %+v", cells[1])
	}
}

func TestTileIDsAtNoLayers(t *testing.T) {
	m := NewMap("orthogonal")
	if ids := m.TileIDsAt(0, 0); len(ids) != 0 {
		t.Errorf("expected empty result for a map with no layers, got %v", ids)
	}
}

func TestTileByID(t *testing.T) {
	m := NewMap("orthogonal")
	ts := mustTileset(t, "dungeon")
	ts.AddTile(&tileset.Tile{ID: 1})
	ts.AddTile(&tileset.Tile{ID: 2})
	m.AddTileset(ts)
	m.BuildTileIndex()

	tile, ok := m.TileByID(2)
	if !ok || tile.ID != 2 {
		t.Error("expected to resolve tile 2")
	}
	if _, ok := m.TileByID(9); ok {
		t.Error("expected unknown id 9 to be absent")
	}

	// Id 0 is the "no tile" marker and is never a valid key.
	if _, ok := m.TileByID(0); ok {
		t.Error("expected id 0 to always be absent")
	}
}

func TestBuildTileIndexSkipsZeroAndOverwrites(t *testing.T) {
	m := NewMap("orthogonal")

	first := mustTileset(t, "first")
	first.AddTile(&tileset.Tile{ID: 0}) // must never be indexed
	firstTile := &tileset.Tile{ID: 3, Properties: property.List{{Name: "from", Value: "first"}}}
	first.AddTile(firstTile)

	second := mustTileset(t, "second")
	secondTile := &tileset.Tile{ID: 3, Properties: property.List{{Name: "from", Value: "second"}}}
	second.AddTile(secondTile)

	m.AddTileset(first)
	m.AddTileset(second)
	m.BuildTileIndex()

	if _, ok := m.TileByID(0); ok {
		t.Error("expected id 0 to stay out of the index")
	}

	tile, ok := m.TileByID(3)
	if !ok {
		t.Fatal("expected id 3 to resolve")
	}
	if got := tile.Property("from", ""); got != "second" {
		t.Errorf("expected the later tileset to win, got tile from '%s'", got)
	}
}

func TestLayerAndGroupLookups(t *testing.T) {
	m := NewMap("orthogonal")
	m.AddLayer(mustLayer(t, "ground", 1, 1, []byte{0}))
	m.AddLayer(mustLayer(t, "walls", 1, 1, []byte{0}))

	spawn := &Object{Name: "spawn", Type: "marker", Properties: property.List{
		{Name: "facing", Value: "north"},
	}}
	m.AddObject(spawn)
	m.AddObjectGroup(&ObjectGroup{Name: "markers", Objects: []*Object{spawn}})

	l, ok := m.LayerByName("walls")
	if !ok || l.Name != "walls" {
		t.Error("expected to find layer 'walls'")
	}
	if _, ok := m.LayerByName("ceiling"); ok {
		t.Error("expected layer 'ceiling' to be absent")
	}

	g, ok := m.ObjectGroupByName("markers")
	if !ok {
		t.Fatal("expected to find group 'markers'")
	}
	o, ok := g.ObjectByName("spawn")
	if !ok {
		t.Fatal("expected to find object 'spawn'")
	}
	if got := o.Property("facing", "south"); got != "north" {
		t.Errorf("expected 'north', got '%s'", got)
	}
	if got := o.Property("missing", "south"); got != "south" {
		t.Errorf("expected default 'south', got '%s'", got)
	}

	var absent *Object
	if got := absent.Property("facing", "south"); got != "south" {
		t.Errorf("expected default 'south' for nil object, got '%s'", got)
	}
}

func TestFreeReleasesOnce(t *testing.T) {
	m := NewMap("orthogonal")

	// Two tilesets carrying the same id; the index references both
	// generations but only the owning tilesets may release them.
	first := mustTileset(t, "first")
	tileA := &tileset.Tile{ID: 1, Properties: property.List{{Name: "a", Value: "1"}}}
	first.AddTile(tileA)

	second := mustTileset(t, "second")
	tileB := &tileset.Tile{ID: 1, Properties: property.List{{Name: "b", Value: "2"}}}
	second.AddTile(tileB)

	m.AddTileset(first)
	m.AddTileset(second)
	m.AddLayer(mustLayer(t, "ground", 2, 1, []byte{1, 0}))
	obj := &Object{Name: "door", Properties: property.List{{Name: "locked", Value: "true"}}}
	m.AddObject(obj)
	m.AddObjectGroup(&ObjectGroup{Name: "doors", Objects: []*Object{obj}})
	m.BuildTileIndex()

	m.Free()

	if tileA.Properties != nil || tileB.Properties != nil {
		t.Error("expected both tiles to be released via their tilesets")
	}
	if obj.Properties != nil {
		t.Error("expected object to be released")
	}
	if m.Tilesets != nil || m.Layers != nil || m.Objects != nil || m.ObjectGroups != nil {
		t.Error("expected owned collections to be dropped")
	}

	// Queries on a freed map return absent results.
	if _, ok := m.TileByID(1); ok {
		t.Error("expected lookups on a freed map to be absent")
	}
	if ids := m.TileIDsAt(0, 0); len(ids) != 0 {
		t.Errorf("expected no ids on a freed map, got %v", ids)
	}

	// A second Free must be a no-op.
	m.Free()

	// Free on a nil map must not crash either.
	var nilMap *Map
	nilMap.Free()
}
