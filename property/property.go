// Package property holds the ordered name/value metadata lists that
// Tiled attaches to tiles and objects.
package property

import "strconv"

// Property is a single designer-authored name/value pair.
type Property struct {
	Name  string `json:"name"`  // Property name as authored in the editor
	Value string `json:"value"` // Raw string value
}

// List is an ordered collection of properties. Order is the parse
// order from the map file; duplicate names are allowed and the first
// occurrence shadows later ones.
type List []Property

// Lookup returns the value of the first property with the given name.
func (l List) Lookup(name string) (string, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// String returns the value of the named property, or def if the list
// has no property with that name.
func (l List) String(name, def string) string {
	if v, ok := l.Lookup(name); ok {
		return v
	}
	return def
}

// Bool returns the named property parsed as a bool, or def if the
// property is missing or not parseable.
func (l List) Bool(name string, def bool) bool {
	v, ok := l.Lookup(name)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Int returns the named property parsed as an int, or def if the
// property is missing or not parseable.
func (l List) Int(name string, def int) int {
	v, ok := l.Lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float returns the named property parsed as a float64, or def if the
// property is missing or not parseable.
func (l List) Float(name string, def float64) float64 {
	v, ok := l.Lookup(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
