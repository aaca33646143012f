package history

import (
	"testing"

	"github.com/jask/tagview/internal/feature"
)

func versions(nums ...int) []Version {
	out := make([]Version, 0, len(nums))
	for _, n := range nums {
		out = append(out, Version{
			FeatureID: 1,
			Kind:      feature.KindNode,
			Num:       n,
			Visible:   true,
			Tags:      map[string]string{"name": "v"},
		})
	}
	return out
}

func TestSetHistorySortsAndResetsPoints(t *testing.T) {
	m := NewBrowserModel()
	m.SetHistory(versions(3, 1, 2))

	got := m.History()
	if len(got) != 3 || got[0].Num != 1 || got[2].Num != 3 {
		t.Fatalf("history not sorted: %v", got)
	}
	if m.PointIndex(ReferencePointInTime) != 0 {
		t.Errorf("reference should start at earliest")
	}
	if m.PointIndex(CurrentPointInTime) != 2 {
		t.Errorf("current should start at latest")
	}
}

func TestSetPointClampsAndNotifies(t *testing.T) {
	m := NewBrowserModel()
	m.SetHistory(versions(1, 2, 3))

	fired := 0
	m.AddChangeListener(func() { fired++ })

	m.SetPoint(ReferencePointInTime, 1)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	m.SetPoint(ReferencePointInTime, 1) // no-op, no notification
	if fired != 1 {
		t.Fatalf("fired = %d after no-op, want 1", fired)
	}
	m.SetPoint(CurrentPointInTime, 99)
	if m.PointIndex(CurrentPointInTime) != 2 {
		t.Errorf("index should clamp to last version")
	}
	m.SetPoint(CurrentPointInTime, -5)
	if m.PointIndex(CurrentPointInTime) != 0 {
		t.Errorf("index should clamp to first version")
	}
}

func TestVersionLookup(t *testing.T) {
	m := NewBrowserModel()
	if _, ok := m.Version(CurrentPointInTime); ok {
		t.Fatal("empty model should have no version")
	}
	m.SetHistory(versions(1, 2))
	v, ok := m.Version(CurrentPointInTime)
	if !ok || v.Num != 2 {
		t.Fatalf("got %v/%v, want version 2", v, ok)
	}
}

func TestListenerRemoval(t *testing.T) {
	m := NewBrowserModel()
	fired := 0
	id := m.AddChangeListener(func() { fired++ })
	keep := 0
	m.AddChangeListener(func() { keep++ })

	m.RemoveChangeListener(id)
	if m.ListenerCount() != 1 {
		t.Fatalf("listeners = %d, want 1", m.ListenerCount())
	}
	m.SetHistory(versions(1))
	if fired != 0 {
		t.Errorf("removed listener fired")
	}
	if keep != 1 {
		t.Errorf("remaining listener did not fire")
	}
}
