package mapstyle

import (
	"fmt"
	"hash/fnv"
	"image"
)

// BoxProviderResult is a computed bounding box. Temporary marks a value the
// caller must not cache: a later computation may return a different box, for
// example while an icon image is still loading.
type BoxProviderResult struct {
	Box       image.Rectangle
	Temporary bool
}

// BoxProvider is a deferred bounding box computation.
type BoxProvider interface {
	BoxResult() BoxProviderResult
}

// SimpleBoxProvider always returns the same non-temporary rectangle.
type SimpleBoxProvider struct {
	Rect image.Rectangle
}

func (p SimpleBoxProvider) BoxResult() BoxProviderResult {
	return BoxProviderResult{Box: p.Rect}
}

// ZeroBox is the rectangle used before any box has been supplied or resolved.
var ZeroBox = image.Rect(0, 0, 0, 0)

// BoxText is the style element for text anchored to a bounding box, like the
// label next to an icon or symbol. One element is built per distinct style
// rule match and shared across every primitive with identical styling; the
// rendered text is composed per feature at paint time.
//
// Exactly one of provider and box is authoritative: while provider is
// non-nil the box may still change, afterwards box is fixed.
type BoxText struct {
	Text *TextLabel

	provider BoxProvider
	box      image.Rectangle

	HAlign HAlign
	VAlign VAlign
}

// NewBoxText builds the element for env with a dynamic box. It returns nil
// when the cascade configures no label or the feature composes no label text;
// styles are rebuilt on any tag change, so skipping here is cheap.
func NewBoxText(env Env, provider BoxProvider) *BoxText {
	return newBoxText(env, provider, ZeroBox)
}

// NewBoxTextFixed builds the element for env with a fixed box.
func NewBoxTextFixed(env Env, box image.Rectangle) *BoxText {
	return newBoxText(env, nil, box)
}

func newBoxText(env Env, provider BoxProvider, box image.Rectangle) *BoxText {
	text := NewTextLabel(env, DefaultTextColor())
	if text == nil {
		return nil
	}
	if text.Compose(env.Feature) == "" {
		return nil
	}

	c := env.Cascade()
	return &BoxText{
		Text:     text,
		provider: provider,
		box:      box,
		HAlign:   hAlignFor(c.GetKeyword(KeyTextAnchorHorizontal, KeywordRight)),
		VAlign:   vAlignFor(c.GetKeyword(KeyTextAnchorVertical, KeywordBottom)),
	}
}

// Box returns the rectangle to use for the current rendering pass. A
// non-temporary provider result is stored and the provider dropped, so later
// calls are a plain field read; a temporary result keeps the provider live.
// Callers are assumed single-threaded (the render loop); Box is not safe for
// concurrent use.
func (b *BoxText) Box() image.Rectangle {
	if b.provider != nil {
		res := b.provider.BoxResult()
		if !res.Temporary {
			b.box = res.Box
			b.provider = nil
		}
		return res.Box
	}
	return b.box
}

// Equal reports structural equality over text, box state and alignment.
// Providers compare by value when both are SimpleBoxProvider, by identity
// otherwise.
func (b *BoxText) Equal(o *BoxText) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.HAlign == o.HAlign &&
		b.VAlign == o.VAlign &&
		b.Text.Equal(o.Text) &&
		providerEqual(b.provider, o.provider) &&
		b.box == o.box
}

func providerEqual(a, b BoxProvider) bool {
	if a == nil || b == nil {
		return a == b
	}
	sa, aok := a.(SimpleBoxProvider)
	sb, bok := b.(SimpleBoxProvider)
	if aok && bok {
		return sa.Rect == sb.Rect
	}
	return a == b
}

// Hash returns a value consistent with Equal, for style element caches.
func (b *BoxText) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%v|%v|%s|%s",
		b.Text.strategyString(), b.Text.Color, b.box, providerRepr(b.provider), b.HAlign, b.VAlign)
	return h.Sum64()
}

func providerRepr(p BoxProvider) string {
	switch v := p.(type) {
	case nil:
		return ""
	case SimpleBoxProvider:
		return fmt.Sprintf("simple%v", v.Rect)
	default:
		return fmt.Sprintf("%p", p)
	}
}

func (b *BoxText) String() string {
	return fmt.Sprintf("BoxText{%s box=%v hAlign=%s vAlign=%s}", b.Text, b.box, b.HAlign, b.VAlign)
}
