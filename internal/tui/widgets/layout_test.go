package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string { return w.text }

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 {
		t.Fatal("expected output")
	}
	if w := ansi.StringWidth(lines[0]); w != 21 {
		t.Fatalf("line width = %d, want 21", w)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatal("expected both widgets in output")
	}
	lines := strings.Split(out, "\n")
	if lines[1] != "" {
		t.Fatalf("expected blank spacing line, got %q", lines[1])
	}
}

func TestSplitSpansEvenRemainder(t *testing.T) {
	got := splitSpans(10, 3, nil)
	if got[0]+got[1]+got[2] != 10 {
		t.Fatalf("spans %v should sum to total", got)
	}
	if got[0] != 4 || got[1] != 3 || got[2] != 3 {
		t.Fatalf("spans = %v, want remainder left to right", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("pad = %q", got)
	}
	if got := PadRight("abcdef", 3); ansi.StringWidth(got) != 3 {
		t.Errorf("truncate width = %d", ansi.StringWidth(got))
	}
	if got := PadRight("x", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}
