package mapstyle

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCascadeTypedGetters(t *testing.T) {
	c := Cascade{
		"text":       "ref",
		"anchor":     Keyword("left"),
		"text-color": "#ff0000",
		"opacity":    0.5,
		"width":      3,
	}

	if got := c.GetString("text", "def"); got != "ref" {
		t.Errorf("GetString = %q", got)
	}
	if got := c.GetString("missing", "def"); got != "def" {
		t.Errorf("GetString missing = %q", got)
	}
	if got := c.GetKeyword("anchor", KeywordRight); got != Keyword("left") {
		t.Errorf("GetKeyword = %q", got)
	}
	// keywords and strings do not cross-convert
	if got := c.GetKeyword("text", KeywordRight); got != KeywordRight {
		t.Errorf("GetKeyword on string = %q, want default", got)
	}
	if got := c.GetString("anchor", "def"); got != "def" {
		t.Errorf("GetString on keyword = %q, want default", got)
	}
	if got := c.GetColor("text-color", "#000000"); got != lipgloss.Color("#ff0000") {
		t.Errorf("GetColor = %s", got)
	}
	if got := c.GetFloat("opacity", 1); got != 0.5 {
		t.Errorf("GetFloat = %v", got)
	}
	if got := c.GetFloat("width", 1); got != 3 {
		t.Errorf("GetFloat int = %v", got)
	}
	if got := c.GetFloat("text", 1); got != 1 {
		t.Errorf("GetFloat wrong type = %v, want default", got)
	}
}

func TestMultiCascadeWildcardMerge(t *testing.T) {
	mc := MultiCascade{}
	mc.GetOrCreate(WildcardLayer)["text-color"] = "#aaaaaa"
	mc.GetOrCreate(WildcardLayer)["text"] = KeywordAuto
	mc.GetOrCreate("casing")["text-color"] = "#bbbbbb"

	c := mc.Get("casing")
	if got := c.GetColor("text-color", ""); got != lipgloss.Color("#bbbbbb") {
		t.Errorf("named layer should win: %s", got)
	}
	if got := c.GetKeyword("text", ""); got != KeywordAuto {
		t.Errorf("wildcard value should fill gaps: %q", got)
	}

	if c := mc.Get("nonexistent"); c.GetColor("text-color", "") != lipgloss.Color("#aaaaaa") {
		t.Errorf("unknown layer should still see wildcard values")
	}
}

func TestMultiCascadeGetOrCreate(t *testing.T) {
	mc := MultiCascade{}
	a := mc.GetOrCreate("default")
	a["text"] = KeywordAuto
	b := mc.GetOrCreate("default")
	if b.GetKeyword("text", "") != KeywordAuto {
		t.Fatal("GetOrCreate should return the existing cascade")
	}
}
