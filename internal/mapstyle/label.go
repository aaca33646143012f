package mapstyle

import (
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/jask/tagview/internal/feature"
)

// CompositionStrategy derives the literal text to render for a feature.
// An empty result means the feature has no label under this strategy.
// String returns a stable description used for equality and hashing of
// style elements.
type CompositionStrategy interface {
	Compose(f *feature.Feature) string
	String() string
}

// TagStrategy reads a single tag.
type TagStrategy struct {
	Key string
}

func (s TagStrategy) Compose(f *feature.Feature) string { return f.Tag(s.Key) }

func (s TagStrategy) String() string { return "tag{" + s.Key + "}" }

// StaticStrategy renders fixed text for every feature.
type StaticStrategy struct {
	Text string
}

func (s StaticStrategy) Compose(f *feature.Feature) string { return s.Text }

func (s StaticStrategy) String() string { return "static{" + s.Text + "}" }

// NameTagStrategy reads the first non-empty tag from an ordered preference
// list. This is what the auto keyword resolves to.
type NameTagStrategy struct {
	Order []string
}

// DefaultNameTags is the tag preference order used by the auto keyword.
func DefaultNameTags() []string {
	return []string{"name", "int_name", "alt_name", "loc_name", "ref", "operator", "brand", "addr:housenumber"}
}

func (s NameTagStrategy) Compose(f *feature.Feature) string {
	order := s.Order
	if len(order) == 0 {
		order = DefaultNameTags()
	}
	for _, key := range order {
		if v := f.Tag(key); v != "" {
			return v
		}
	}
	return ""
}

func (s NameTagStrategy) String() string {
	order := s.Order
	if len(order) == 0 {
		order = DefaultNameTags()
	}
	return "nametags{" + strings.Join(order, ",") + "}"
}

// ExprStrategy evaluates a compiled expression against the feature. The
// expression sees tags, id, kind and version; any compile or runtime failure
// composes no label rather than failing the style rule.
type ExprStrategy struct {
	src     string
	program *exprvm.Program
}

// NewExprStrategy compiles src once for reuse across features.
func NewExprStrategy(src string) (*ExprStrategy, error) {
	program, err := exprlang.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile label expression: %w", err)
	}
	return &ExprStrategy{src: src, program: program}, nil
}

func (s *ExprStrategy) Compose(f *feature.Feature) string {
	if s == nil || s.program == nil || f == nil {
		return ""
	}
	env := map[string]any{
		"tags":    f.Tags,
		"id":      f.ID,
		"kind":    string(f.Kind),
		"version": f.Version,
	}
	result, err := exprlang.Run(s.program, env)
	if err != nil || result == nil {
		return ""
	}
	switch v := result.(type) {
	case string:
		return v
	case bool:
		// booleans make no label text
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (s *ExprStrategy) String() string { return "expr{" + s.src + "}" }
