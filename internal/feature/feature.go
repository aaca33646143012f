// Package feature holds the map feature model shared by styling and history
// browsing: a typed primitive with a free-form tag map and a version number.
package feature

import "fmt"

// Kind distinguishes the three primitive types.
type Kind string

const (
	KindNode     Kind = "node"
	KindWay      Kind = "way"
	KindRelation Kind = "relation"
)

// Feature is one map primitive at a specific version.
type Feature struct {
	ID      int64
	Kind    Kind
	Version int
	Tags    map[string]string
}

// New returns a feature with an initialised tag map.
func New(kind Kind, id int64) *Feature {
	return &Feature{ID: id, Kind: kind, Tags: map[string]string{}}
}

// Tag returns the value for key, or "" when the tag is absent.
func (f *Feature) Tag(key string) string {
	if f == nil {
		return ""
	}
	return f.Tags[key]
}

// HasTag reports whether key is present with a non-empty value.
func (f *Feature) HasTag(key string) bool {
	return f.Tag(key) != ""
}

// SetTag sets key to value, allocating the tag map if needed.
func (f *Feature) SetTag(key, value string) {
	if f.Tags == nil {
		f.Tags = map[string]string{}
	}
	f.Tags[key] = value
}

// DisplayName derives a human-readable name: the name tag when present,
// otherwise "kind id".
func (f *Feature) DisplayName() string {
	if f == nil {
		return ""
	}
	if name := f.Tag("name"); name != "" {
		return name
	}
	return fmt.Sprintf("%s %d", f.Kind, f.ID)
}
