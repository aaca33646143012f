package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tagview/internal/config"
	"github.com/jask/tagview/internal/database"
	"github.com/jask/tagview/internal/history"
	"github.com/jask/tagview/internal/mapstyle"
	"github.com/jask/tagview/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := history.SeedDemo(ctx, db); err != nil {
		log.Fatalf("seed demo history: %v", err)
	}

	// default label color comes from preferences, resolved lazily on first use
	mapstyle.SetDefaultTextColorProvider(func() lipgloss.Color {
		return lipgloss.Color(cfg.Colors.Text)
	})

	repo := history.NewRepo(db)
	viewer := tui.NewViewer(repo, tui.NewTheme(cfg.Colors), cfg.UI.DateFormat)

	p := tea.NewProgram(viewer, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
