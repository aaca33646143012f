package widgets

import (
	"strings"
	"testing"
)

func TestPaneEmbedsTitleAndContent(t *testing.T) {
	p := Pane{Title: "Reference", Content: "hello"}
	out := p.Render(30, 5)
	if !strings.Contains(out, "Reference") {
		t.Fatalf("title missing:\n%s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("content missing:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
}

func TestPaneFocusMarker(t *testing.T) {
	focused := Pane{Title: "T", Focused: true}.Render(20, 3)
	if !strings.Contains(focused, "●") {
		t.Errorf("focused pane should carry marker:\n%s", focused)
	}
	blurred := Pane{Title: "T"}.Render(20, 3)
	if strings.Contains(blurred, "●") {
		t.Errorf("blurred pane should not carry marker:\n%s", blurred)
	}
}

func TestPaneTooSmall(t *testing.T) {
	if got := (Pane{Title: "T"}).Render(3, 2); got != "" {
		t.Errorf("got %q for undersized pane", got)
	}
}
