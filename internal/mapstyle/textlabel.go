package mapstyle

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tagview/internal/feature"
)

// TextLabel describes label text independent of placement: how the text is
// composed from the feature's tags and which color it renders in. The concrete
// text is not stored here; it is composed per feature so one label (and one
// style element) can be shared by every primitive with identical styling.
type TextLabel struct {
	Strategy CompositionStrategy
	Color    lipgloss.Color
}

// NewTextLabel resolves the text properties from env's cascade. It returns
// nil when the cascade configures no label.
//
// Resolution order: text-expression wins over text; under text the keyword
// auto selects the name-tag preference list while a plain string names a tag.
// An expression that fails to compile configures no label.
func NewTextLabel(env Env, defaultColor lipgloss.Color) *TextLabel {
	c := env.Cascade()

	var strategy CompositionStrategy
	if src := c.GetString(KeyTextExpression, ""); src != "" {
		s, err := NewExprStrategy(src)
		if err != nil {
			return nil
		}
		strategy = s
	} else if c.GetKeyword(KeyText, "") == KeywordAuto {
		strategy = NameTagStrategy{}
	} else if key := c.GetString(KeyText, ""); key != "" {
		strategy = TagStrategy{Key: key}
	} else {
		return nil
	}

	return &TextLabel{
		Strategy: strategy,
		Color:    c.GetColor(KeyTextColor, defaultColor),
	}
}

// Compose derives the label text for f, "" when f has none.
func (t *TextLabel) Compose(f *feature.Feature) string {
	if t == nil || t.Strategy == nil {
		return ""
	}
	return t.Strategy.Compose(f)
}

// Equal reports structural equality over strategy description and color.
func (t *TextLabel) Equal(o *TextLabel) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.strategyString() == o.strategyString() && t.Color == o.Color
}

func (t *TextLabel) strategyString() string {
	if t.Strategy == nil {
		return ""
	}
	return t.Strategy.String()
}

func (t *TextLabel) String() string {
	return "TextLabel{" + t.strategyString() + " color=" + string(t.Color) + "}"
}
