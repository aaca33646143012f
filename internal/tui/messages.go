package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tagview/internal/history"
)

type featuresLoadedMsg struct {
	Refs []history.FeatureRef
	Err  error
}

type historyLoadedMsg struct {
	Ref      history.FeatureRef
	Versions []history.Version
	Err      error
}

func loadFeaturesCmd(repo *history.Repo) tea.Cmd {
	return func() tea.Msg {
		refs, err := repo.Features(context.Background())
		return featuresLoadedMsg{Refs: refs, Err: err}
	}
}

func loadHistoryCmd(repo *history.Repo, ref history.FeatureRef) tea.Cmd {
	return func() tea.Msg {
		versions, err := repo.History(context.Background(), ref.Kind, ref.ID)
		return historyLoadedMsg{Ref: ref, Versions: versions, Err: err}
	}
}
