package mapstyle

import "github.com/agnivade/levenshtein"

// HAlign anchors label text horizontally relative to its box.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

func (a HAlign) String() string {
	switch a {
	case HLeft:
		return "left"
	case HCenter:
		return "center"
	default:
		return "right"
	}
}

// VAlign anchors label text vertically relative to its box.
type VAlign int

const (
	VAbove VAlign = iota
	VTop
	VCenter
	VBottom
	VBelow
)

func (a VAlign) String() string {
	switch a {
	case VAbove:
		return "above"
	case VTop:
		return "top"
	case VCenter:
		return "center"
	case VBelow:
		return "below"
	default:
		return "bottom"
	}
}

// Keyword tables for the two anchor properties. Lookups fall back to the
// documented default so unknown keywords from newer style sheets keep
// rendering instead of failing.
var (
	hAlignByKeyword = map[Keyword]HAlign{
		"left":   HLeft,
		"center": HCenter,
		"right":  HRight,
	}
	vAlignByKeyword = map[Keyword]VAlign{
		"above":  VAbove,
		"top":    VTop,
		"center": VCenter,
		"below":  VBelow,
		"bottom": VBottom,
	}
)

func hAlignFor(kw Keyword) HAlign {
	if a, ok := hAlignByKeyword[kw]; ok {
		return a
	}
	return HRight
}

func vAlignFor(kw Keyword) VAlign {
	if a, ok := vAlignByKeyword[kw]; ok {
		return a
	}
	return VBottom
}

// SuggestAnchorKeyword returns the known anchor keyword closest to got, or ""
// when nothing is close enough to be a plausible typo. Advisory only; anchor
// resolution itself always falls back to the default.
func SuggestAnchorKeyword(got string) string {
	best := ""
	bestDist := 3 // more than two edits away is not a typo
	for _, kw := range []string{"left", "center", "right", "above", "top", "below", "bottom"} {
		if kw == got {
			return ""
		}
		if d := levenshtein.ComputeDistance(got, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best
}

// AnchorDiagnostics reports unknown anchor keywords in c, with a typo
// suggestion when one is close. Unknown keywords still resolve to defaults;
// the messages exist for style sheet authors, not for the renderer.
func AnchorDiagnostics(c Cascade) []string {
	var out []string
	check := func(key string, known func(Keyword) bool) {
		kw, ok := c[key].(Keyword)
		if !ok || known(kw) {
			return
		}
		msg := key + ": unknown keyword " + string(kw)
		if s := SuggestAnchorKeyword(string(kw)); s != "" {
			msg += " (did you mean " + s + "?)"
		}
		out = append(out, msg)
	}
	check(KeyTextAnchorHorizontal, func(kw Keyword) bool { _, ok := hAlignByKeyword[kw]; return ok })
	check(KeyTextAnchorVertical, func(kw Keyword) bool { _, ok := vAlignByKeyword[kw]; return ok })
	return out
}
