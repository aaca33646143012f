package mapstyle

import (
	"image"
	"testing"

	"github.com/jask/tagview/internal/feature"
)

func testEnv(tags map[string]string, props Cascade) Env {
	f := feature.New(feature.KindNode, 1)
	for k, v := range tags {
		f.SetTag(k, v)
	}
	mc := MultiCascade{}
	c := mc.GetOrCreate("default")
	c[KeyText] = KeywordAuto
	for k, v := range props {
		c[k] = v
	}
	return Env{Feature: f, MC: mc, Layer: "default"}
}

type countingProvider struct {
	rect      image.Rectangle
	temporary bool
	calls     int
}

func (p *countingProvider) BoxResult() BoxProviderResult {
	p.calls++
	return BoxProviderResult{Box: p.rect, Temporary: p.temporary}
}

func TestBoxMemoizesNonTemporaryResult(t *testing.T) {
	p := &countingProvider{rect: image.Rect(0, 0, 16, 16)}
	b := NewBoxText(testEnv(map[string]string{"name": "pub"}, nil), p)
	if b == nil {
		t.Fatal("expected element")
	}
	first := b.Box()
	second := b.Box()
	if first != p.rect || second != p.rect {
		t.Fatalf("got %v then %v, want %v", first, second, p.rect)
	}
	if p.calls != 1 {
		t.Fatalf("provider called %d times, want 1", p.calls)
	}
}

func TestBoxReinvokesTemporaryProvider(t *testing.T) {
	p := &countingProvider{rect: image.Rect(0, 0, 8, 8), temporary: true}
	b := NewBoxText(testEnv(map[string]string{"name": "pub"}, nil), p)
	if b == nil {
		t.Fatal("expected element")
	}
	b.Box()
	b.Box()
	if p.calls != 2 {
		t.Fatalf("provider called %d times, want 2", p.calls)
	}

	// The box settles once the provider stops reporting temporary.
	p.rect = image.Rect(0, 0, 24, 24)
	p.temporary = false
	if got := b.Box(); got != p.rect {
		t.Fatalf("got %v, want %v", got, p.rect)
	}
	b.Box()
	if p.calls != 3 {
		t.Fatalf("provider called %d times after settling, want 3", p.calls)
	}
}

func TestBoxWithoutProviderReturnsStoredBox(t *testing.T) {
	box := image.Rect(2, 2, 10, 10)
	b := NewBoxTextFixed(testEnv(map[string]string{"name": "pub"}, nil), box)
	if b == nil {
		t.Fatal("expected element")
	}
	if got := b.Box(); got != box {
		t.Fatalf("got %v, want %v", got, box)
	}
}

func TestNewBoxTextSkipsFeatureWithoutLabelText(t *testing.T) {
	env := testEnv(map[string]string{"highway": "residential"}, nil)
	if b := NewBoxText(env, SimpleBoxProvider{Rect: image.Rect(0, 0, 4, 4)}); b != nil {
		t.Fatalf("expected nil element, got %v", b)
	}
}

func TestNewBoxTextSkipsCascadeWithoutTextProperty(t *testing.T) {
	f := feature.New(feature.KindNode, 7)
	f.SetTag("name", "pub")
	env := Env{Feature: f, MC: MultiCascade{"default": Cascade{}}, Layer: "default"}
	if b := NewBoxTextFixed(env, ZeroBox); b != nil {
		t.Fatalf("expected nil element, got %v", b)
	}
}

func TestNewBoxTextDefaultsAnchors(t *testing.T) {
	b := NewBoxTextFixed(testEnv(map[string]string{"name": "pub"}, nil), ZeroBox)
	if b == nil {
		t.Fatal("expected element")
	}
	if b.HAlign != HRight || b.VAlign != VBottom {
		t.Fatalf("got %s/%s, want right/bottom", b.HAlign, b.VAlign)
	}
	if b.Text == nil {
		t.Fatal("expected text label")
	}
}

func TestBoxTextEqualityAndHash(t *testing.T) {
	env := testEnv(map[string]string{"name": "pub"}, nil)
	box := image.Rect(0, 0, 12, 12)
	a := NewBoxTextFixed(env, box)
	b := NewBoxTextFixed(env, box)
	if !a.Equal(b) {
		t.Fatalf("expected %v == %v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("hashes differ for equal elements")
	}

	c := NewBoxTextFixed(testEnv(map[string]string{"name": "pub"}, Cascade{KeyTextAnchorHorizontal: Keyword("left")}), box)
	if a.Equal(c) {
		t.Fatalf("expected differing hAlign to break equality")
	}
}

func TestSimpleBoxProvidersCompareByValue(t *testing.T) {
	env := testEnv(map[string]string{"name": "pub"}, nil)
	a := NewBoxText(env, SimpleBoxProvider{Rect: image.Rect(0, 0, 6, 6)})
	b := NewBoxText(env, SimpleBoxProvider{Rect: image.Rect(0, 0, 6, 6)})
	if !a.Equal(b) {
		t.Fatalf("expected equal elements for equal simple providers")
	}
}
