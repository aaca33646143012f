// Package tui implements the history comparison viewer: two tag tables side
// by side, reference version on the left and current version on the right,
// with synchronized scrolling and row selection.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tagview/internal/history"
)

// Viewer is the top-level bubbletea model.
type Viewer struct {
	repo  *history.Repo
	keys  KeyMap
	theme Theme

	dateFormat string

	features   []history.FeatureRef
	featureIdx int

	model      *history.BrowserModel
	listenerID int

	// Both tables render the same row union with one shared offset and
	// selection, which is what keeps them scrolling in lockstep.
	rows     []history.TagRow
	offset   int
	selected int
	focus    history.PointInTimeType

	width  int
	height int

	status    string
	statusErr bool
}

// NewViewer builds a viewer over the given history store.
func NewViewer(repo *history.Repo, theme Theme, dateFormat string) *Viewer {
	v := &Viewer{
		repo:       repo,
		keys:       DefaultKeyMap(),
		theme:      theme,
		dateFormat: dateFormat,
		focus:      history.CurrentPointInTime,
		width:      100,
		height:     32,
		status:     "Loading",
	}
	v.SetModel(history.NewBrowserModel())
	return v
}

// SetModel swaps the browser model under the viewer. The listener registered
// on the old model is removed first so a replaced model keeps no reference to
// this viewer.
func (v *Viewer) SetModel(m *history.BrowserModel) {
	if v.model != nil {
		v.model.RemoveChangeListener(v.listenerID)
	}
	v.model = m
	if v.model != nil {
		v.listenerID = v.model.AddChangeListener(v.refresh)
	}
	v.refresh()
}

// Model returns the browser model currently attached.
func (v *Viewer) Model() *history.BrowserModel { return v.model }

// refresh rebuilds the comparison rows from the model's two points in time.
func (v *Viewer) refresh() {
	if v.model == nil {
		v.rows = nil
		return
	}
	ref, _ := v.model.Version(history.ReferencePointInTime)
	cur, _ := v.model.Version(history.CurrentPointInTime)
	v.rows = history.DiffTags(ref.Tags, cur.Tags)
	if v.selected >= len(v.rows) {
		v.selected = len(v.rows) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
	v.ensureVisible()
}

func (v *Viewer) Init() tea.Cmd {
	return loadFeaturesCmd(v.repo)
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ensureVisible()
		return v, nil

	case featuresLoadedMsg:
		if msg.Err != nil {
			v.setError(msg.Err.Error())
			return v, nil
		}
		v.features = msg.Refs
		v.featureIdx = 0
		if len(v.features) == 0 {
			v.setError("no feature history stored")
			return v, nil
		}
		return v, loadHistoryCmd(v.repo, v.features[0])

	case historyLoadedMsg:
		if msg.Err != nil {
			v.setError(msg.Err.Error())
			return v, nil
		}
		m := history.NewBrowserModel()
		m.SetHistory(msg.Versions)
		v.SetModel(m)
		v.offset = 0
		v.selected = 0
		v.refresh()
		v.setStatus(fmt.Sprintf("%s %d loaded", msg.Ref.Kind, msg.Ref.ID))
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		v.moveSelection(-1)
	case key.Matches(msg, v.keys.Down):
		v.moveSelection(1)
	case key.Matches(msg, v.keys.PageUp):
		v.moveSelection(-v.tableBodyHeight())
	case key.Matches(msg, v.keys.PageDown):
		v.moveSelection(v.tableBodyHeight())

	case key.Matches(msg, v.keys.RefOlder):
		v.movePoint(history.ReferencePointInTime, -1)
	case key.Matches(msg, v.keys.RefNewer):
		v.movePoint(history.ReferencePointInTime, 1)
	case key.Matches(msg, v.keys.CurOlder):
		v.movePoint(history.CurrentPointInTime, -1)
	case key.Matches(msg, v.keys.CurNewer):
		v.movePoint(history.CurrentPointInTime, 1)

	case key.Matches(msg, v.keys.SwitchPane):
		if v.focus == history.ReferencePointInTime {
			v.focus = history.CurrentPointInTime
		} else {
			v.focus = history.ReferencePointInTime
		}

	case key.Matches(msg, v.keys.NextFeature):
		return v, v.switchFeature(1)
	case key.Matches(msg, v.keys.PrevFeature):
		return v, v.switchFeature(-1)
	}
	return v, nil
}

func (v *Viewer) switchFeature(delta int) tea.Cmd {
	if len(v.features) == 0 {
		return nil
	}
	v.featureIdx = (v.featureIdx + delta + len(v.features)) % len(v.features)
	return loadHistoryCmd(v.repo, v.features[v.featureIdx])
}

func (v *Viewer) movePoint(pt history.PointInTimeType, delta int) {
	if v.model == nil {
		return
	}
	// refresh runs through the model's change listener
	v.model.SetPoint(pt, v.model.PointIndex(pt)+delta)
}

func (v *Viewer) moveSelection(delta int) {
	if len(v.rows) == 0 {
		return
	}
	v.selected += delta
	if v.selected < 0 {
		v.selected = 0
	}
	if v.selected >= len(v.rows) {
		v.selected = len(v.rows) - 1
	}
	v.ensureVisible()
}

// ensureVisible scrolls the shared offset so the selection stays on screen.
func (v *Viewer) ensureVisible() {
	body := v.tableBodyHeight()
	if body <= 0 {
		return
	}
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+body {
		v.offset = v.selected - body + 1
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// tableBodyHeight is the number of data rows each table can show, derived
// from the fixed chrome around the tables.
func (v *Viewer) tableBodyHeight() int {
	// header + info panes + table chrome (border 2, header 1) + preview + status
	h := v.height - 1 - infoPaneHeight - 3 - 1 - 1
	if h < 1 {
		h = 1
	}
	return h
}

func (v *Viewer) setStatus(s string) {
	v.status = s
	v.statusErr = false
}

func (v *Viewer) setError(s string) {
	v.status = s
	v.statusErr = true
}
