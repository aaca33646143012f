// Package mapstyle resolves how map-feature labels are rendered: which text a
// feature gets, what color it uses and where it is anchored relative to a
// bounding box. Style properties arrive as a cascade, the already-merged set
// of string-keyed values for one rendering pass.
package mapstyle

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tagview/internal/feature"
)

// Keyword is a style keyword value, kept distinct from plain strings so a
// quoted string in a style sheet never matches a keyword-typed property.
type Keyword string

const (
	KeywordAuto   Keyword = "auto"
	KeywordRight  Keyword = "right"
	KeywordBottom Keyword = "bottom"
)

// Style property keys consumed by this package.
const (
	KeyText                 = "text"
	KeyTextExpression       = "text-expression"
	KeyTextColor            = "text-color"
	KeyTextAnchorHorizontal = "text-anchor-horizontal"
	KeyTextAnchorVertical   = "text-anchor-vertical"
)

// Cascade holds the resolved style properties for one layer. Lookups are
// tolerant: a missing key or a value of the wrong type yields the caller's
// default instead of an error, so unknown or future style sheet constructs
// never break rendering.
type Cascade map[string]any

// GetString returns the string value for key, or def.
func (c Cascade) GetString(key, def string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return def
}

// GetKeyword returns the keyword value for key, or def. Plain strings do not
// convert to keywords.
func (c Cascade) GetKeyword(key string, def Keyword) Keyword {
	if v, ok := c[key].(Keyword); ok {
		return v
	}
	return def
}

// GetColor returns the color value for key, or def. String values are
// accepted as color literals.
func (c Cascade) GetColor(key string, def lipgloss.Color) lipgloss.Color {
	switch v := c[key].(type) {
	case lipgloss.Color:
		return v
	case string:
		return lipgloss.Color(v)
	}
	return def
}

// GetFloat returns the numeric value for key, or def.
func (c Cascade) GetFloat(key string, def float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// MultiCascade groups the per-layer cascades produced for one feature. The
// wildcard layer "*" contributes defaults to every named layer.
type MultiCascade map[string]Cascade

// WildcardLayer contributes to every named layer lookup.
const WildcardLayer = "*"

// GetOrCreate returns the cascade for layer, creating it when absent.
func (mc MultiCascade) GetOrCreate(layer string) Cascade {
	if c, ok := mc[layer]; ok {
		return c
	}
	c := Cascade{}
	mc[layer] = c
	return c
}

// Get returns the effective cascade for layer: wildcard values overlaid by the
// named layer, stronger layer winning per key.
func (mc MultiCascade) Get(layer string) Cascade {
	base := mc[WildcardLayer]
	named := mc[layer]
	if base == nil {
		if named == nil {
			return Cascade{}
		}
		return named
	}
	merged := make(Cascade, len(base)+len(named))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range named {
		merged[k] = v
	}
	return merged
}

// Env is the input to style element construction: the feature being styled
// plus its cascades and the layer under evaluation.
type Env struct {
	Feature *feature.Feature
	MC      MultiCascade
	Layer   string
}

// Cascade returns the effective cascade for the environment's layer.
func (e Env) Cascade() Cascade {
	if e.MC == nil {
		return Cascade{}
	}
	return e.MC.Get(e.Layer)
}
