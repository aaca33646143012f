package feature

import "testing"

func TestTagHelpers(t *testing.T) {
	f := New(KindNode, 5)
	if f.HasTag("name") {
		t.Fatal("fresh feature should have no tags")
	}
	f.SetTag("name", "Mill")
	if f.Tag("name") != "Mill" || !f.HasTag("name") {
		t.Fatalf("tag round trip failed: %v", f.Tags)
	}

	var nilFeature *Feature
	if nilFeature.Tag("name") != "" {
		t.Fatal("nil feature should read as empty")
	}
}

func TestSetTagAllocatesMap(t *testing.T) {
	f := &Feature{ID: 1, Kind: KindWay}
	f.SetTag("highway", "residential")
	if f.Tag("highway") != "residential" {
		t.Fatal("SetTag on zero-value feature failed")
	}
}

func TestDisplayName(t *testing.T) {
	f := New(KindWay, 8111)
	if got := f.DisplayName(); got != "way 8111" {
		t.Errorf("got %q", got)
	}
	f.SetTag("name", "Mill Lane")
	if got := f.DisplayName(); got != "Mill Lane" {
		t.Errorf("got %q", got)
	}
}
