// Package history models version history of map features and the browsing
// state shared by the comparison viewer: a loaded list of versions plus two
// movable points in time, reference and current.
package history

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jask/tagview/internal/feature"
)

// Version is one committed revision of a feature.
type Version struct {
	RowID     uuid.UUID
	FeatureID int64
	Kind      feature.Kind
	Num       int
	Visible   bool
	User      string
	Changeset int64
	Timestamp time.Time
	Tags      map[string]string
}

// Feature materialises the version as a feature for styling.
func (v Version) Feature() *feature.Feature {
	return &feature.Feature{ID: v.FeatureID, Kind: v.Kind, Version: v.Num, Tags: v.Tags}
}

// PointInTimeType selects one of the two compared versions.
type PointInTimeType int

const (
	ReferencePointInTime PointInTimeType = iota
	CurrentPointInTime
)

func (p PointInTimeType) String() string {
	if p == ReferencePointInTime {
		return "reference"
	}
	return "current"
}

// BrowserModel holds the loaded history and the two points in time. Change
// listeners fire after every mutation; a viewer registers on attach and must
// deregister before the model is swapped so no listener dangles.
type BrowserModel struct {
	history   []Version
	reference int
	current   int

	listeners    map[int]func()
	nextListener int
}

// NewBrowserModel returns an empty model.
func NewBrowserModel() *BrowserModel {
	return &BrowserModel{listeners: map[int]func(){}}
}

// SetHistory replaces the loaded versions, sorts them by version number and
// resets the points in time to earliest/latest.
func (m *BrowserModel) SetHistory(versions []Version) {
	m.history = append([]Version(nil), versions...)
	sort.Slice(m.history, func(i, j int) bool { return m.history[i].Num < m.history[j].Num })
	m.reference = 0
	m.current = len(m.history) - 1
	if m.current < 0 {
		m.current = 0
	}
	m.notify()
}

// History returns the loaded versions, earliest first.
func (m *BrowserModel) History() []Version { return m.history }

// Len returns the number of loaded versions.
func (m *BrowserModel) Len() int { return len(m.history) }

// PointIndex returns the history index of the given point in time.
func (m *BrowserModel) PointIndex(pt PointInTimeType) int {
	if pt == ReferencePointInTime {
		return m.reference
	}
	return m.current
}

// Version returns the version at the given point in time.
func (m *BrowserModel) Version(pt PointInTimeType) (Version, bool) {
	idx := m.PointIndex(pt)
	if idx < 0 || idx >= len(m.history) {
		return Version{}, false
	}
	return m.history[idx], true
}

// SetPoint moves a point in time to index, clamped to the loaded range.
func (m *BrowserModel) SetPoint(pt PointInTimeType, index int) {
	if len(m.history) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.history) {
		index = len(m.history) - 1
	}
	if pt == ReferencePointInTime {
		if m.reference == index {
			return
		}
		m.reference = index
	} else {
		if m.current == index {
			return
		}
		m.current = index
	}
	m.notify()
}

// AddChangeListener registers fn and returns a handle for removal.
func (m *BrowserModel) AddChangeListener(fn func()) int {
	if m.listeners == nil {
		m.listeners = map[int]func(){}
	}
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn
	return id
}

// RemoveChangeListener deregisters the listener with the given handle.
func (m *BrowserModel) RemoveChangeListener(id int) {
	delete(m.listeners, id)
}

// ListenerCount reports how many listeners are registered.
func (m *BrowserModel) ListenerCount() int { return len(m.listeners) }

func (m *BrowserModel) notify() {
	for _, fn := range m.listeners {
		fn()
	}
}
