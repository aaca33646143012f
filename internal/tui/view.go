package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/jask/tagview/internal/history"
	"github.com/jask/tagview/internal/mapstyle"
	"github.com/jask/tagview/internal/tui/widgets"
)

// infoPaneHeight is the fixed height of the two version info panes,
// border included.
const infoPaneHeight = 6

func (v *Viewer) View() string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}

	sections := []string{
		v.renderHeader(),
		v.renderInfoRow(),
		v.renderTables(),
		v.renderPreview(),
		v.renderStatus(),
	}
	return strings.Join(sections, "\n")
}

func (v *Viewer) renderHeader() string {
	title := "tagview"
	if len(v.features) > 0 {
		ref := v.features[v.featureIdx]
		name := ref.Name
		if name == "" {
			name = "(unnamed)"
		}
		title = fmt.Sprintf("tagview — %s %d · %s · %d versions (%d/%d)",
			ref.Kind, ref.ID, name, ref.Versions, v.featureIdx+1, len(v.features))
	}
	return v.theme.header.Render(widgets.PadRight(title, v.width))
}

func (v *Viewer) renderInfoRow() string {
	refPane := widgets.Pane{
		Title:   "Reference",
		Content: v.versionInfo(history.ReferencePointInTime),
		Focused: v.focus == history.ReferencePointInTime,
	}
	curPane := widgets.Pane{
		Title:   "Current",
		Content: v.versionInfo(history.CurrentPointInTime),
		Focused: v.focus == history.CurrentPointInTime,
	}
	return widgets.HStack{
		Widgets: []widgets.Widget{refPane, curPane},
		Gap:     1,
	}.Render(v.width, infoPaneHeight)
}

func (v *Viewer) versionInfo(pt history.PointInTimeType) string {
	ver, ok := v.model.Version(pt)
	if !ok {
		return v.theme.muted.Render("no version")
	}
	lines := []string{
		fmt.Sprintf("version   %d of %d", ver.Num, v.model.Len()),
		fmt.Sprintf("date      %s", ver.Timestamp.Format(v.dateFormat)),
		fmt.Sprintf("user      %s", ver.User),
		fmt.Sprintf("changeset %d", ver.Changeset),
	}
	return strings.Join(lines, "\n")
}

func (v *Viewer) renderTables() string {
	body := v.tableBodyHeight()

	refRows := make([]widgets.Row, len(v.rows))
	curRows := make([]widgets.Row, len(v.rows))
	for i, row := range v.rows {
		style := v.theme.RowStyle(row.State)
		refValue := row.RefValue
		curValue := row.CurValue
		if row.State == history.Added {
			refValue = "-"
		}
		if row.State == history.Deleted {
			curValue = "-"
		}
		refRows[i] = widgets.Row{Cells: []string{row.Key, refValue}, Style: style}
		curRows[i] = widgets.Row{Cells: []string{row.Key, curValue}, Style: style}
	}

	makeTable := func(rows []widgets.Row, focused bool) widgets.Table {
		return widgets.Table{
			Columns:  []string{"Key", "Value"},
			Rows:     rows,
			Ratios:   []float64{0.4, 0.6},
			Offset:   v.offset,
			Selected: v.selected,
			Focused:  focused,
		}
	}

	paneW := (v.width - 1) / 2
	innerW := paneW - 4
	refTable := makeTable(refRows, v.focus == history.ReferencePointInTime).Render(innerW, body+1)
	curTable := makeTable(curRows, v.focus == history.CurrentPointInTime).Render(innerW, body+1)

	return widgets.HStack{
		Widgets: []widgets.Widget{
			widgets.Pane{Title: "Tags (reference)", Content: refTable, Focused: v.focus == history.ReferencePointInTime},
			widgets.Pane{Title: "Tags (current)", Content: curTable, Focused: v.focus == history.CurrentPointInTime},
		},
		Gap: 1,
	}.Render(v.width, body+3)
}

// renderPreview shows how the current version would be labelled on the map:
// composed text, anchor alignment and any style sheet diagnostics.
func (v *Viewer) renderPreview() string {
	ver, ok := v.model.Version(history.CurrentPointInTime)
	if !ok {
		return v.theme.muted.Render(widgets.PadRight("label: none", v.width))
	}

	mc := mapstyle.MultiCascade{}
	c := mc.GetOrCreate("default")
	c[mapstyle.KeyText] = mapstyle.KeywordAuto
	env := mapstyle.Env{Feature: ver.Feature(), MC: mc, Layer: "default"}

	element := mapstyle.NewBoxText(env, mapstyle.SimpleBoxProvider{Rect: image.Rect(0, 0, 16, 16)})
	if element == nil {
		return v.theme.muted.Render(widgets.PadRight("label: none (no name tags)", v.width))
	}

	box := element.Box()
	line := fmt.Sprintf("label: %q anchored %s/%s of %dx%d box",
		element.Text.Compose(env.Feature), element.HAlign, element.VAlign, box.Dx(), box.Dy())
	if diags := mapstyle.AnchorDiagnostics(c); len(diags) > 0 {
		line += " · " + strings.Join(diags, "; ")
	}
	return v.theme.muted.Render(widgets.PadRight(line, v.width))
}

func (v *Viewer) renderStatus() string {
	help := "↑↓ rows · [/] ref · {/} cur · tab side · n/p feature · q quit"
	line := widgets.PadRight(v.status+"  "+help, v.width)
	if v.statusErr {
		return v.theme.statusErr.Render(line)
	}
	return v.theme.status.Render(line)
}
