package history

import "sort"

// DiffState classifies one tag key between the reference and current version.
type DiffState int

const (
	Unchanged DiffState = iota
	Modified
	Added   // present only in current
	Deleted // present only in reference
)

func (s DiffState) String() string {
	switch s {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	default:
		return "unchanged"
	}
}

// TagRow is one row of the comparison tables: the same key viewed from both
// points in time. Both tables render the full union of keys so row indices
// line up and scrolling/selection can stay synchronized.
type TagRow struct {
	Key      string
	RefValue string
	CurValue string
	State    DiffState
}

// DiffTags compares the tag maps of the reference and current version and
// returns one row per key in the union, sorted by key.
func DiffTags(ref, cur map[string]string) []TagRow {
	keys := make(map[string]struct{}, len(ref)+len(cur))
	for k := range ref {
		keys[k] = struct{}{}
	}
	for k := range cur {
		keys[k] = struct{}{}
	}

	rows := make([]TagRow, 0, len(keys))
	for k := range keys {
		rv, inRef := ref[k]
		cv, inCur := cur[k]
		row := TagRow{Key: k, RefValue: rv, CurValue: cv}
		switch {
		case inRef && !inCur:
			row.State = Deleted
		case !inRef && inCur:
			row.State = Added
		case rv != cv:
			row.State = Modified
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}
