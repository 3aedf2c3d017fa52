package tilemap

import "github.com/FlavioFalcao/ebiten-tiled/property"

// Object is a placed map object: a trigger region, spawn point, or
// other designer-defined marker.
type Object struct {
	Name       string        `json:"name"`       // Object name
	Type       string        `json:"type"`       // Designer-defined type string
	Properties property.List `json:"properties"` // Metadata in parse order
}

// Property returns the value of the first property with the given
// name, or def if the object is nil or has no such property.
func (o *Object) Property(name, def string) string {
	if o == nil {
		return def
	}
	return o.Properties.String(name, def)
}

// PropertyBool is Property with the value parsed as a bool.
func (o *Object) PropertyBool(name string, def bool) bool {
	if o == nil {
		return def
	}
	return o.Properties.Bool(name, def)
}

func (o *Object) free() {
	o.Properties = nil
}

// ObjectGroup is a named collection of objects.
type ObjectGroup struct {
	Name    string    `json:"name"`    // Group name
	Objects []*Object `json:"objects"` // Objects in parse order
}

// ObjectByName returns the first object in the group with the given
// name.
func (g *ObjectGroup) ObjectByName(name string) (*Object, bool) {
	for _, o := range g.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}
