package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/startpage-snake/internal/config"
	"github.com/vovakirdan/startpage-snake/internal/core"
	_ "github.com/vovakirdan/startpage-snake/internal/games/snake"
	"github.com/vovakirdan/startpage-snake/internal/registry"
	"github.com/vovakirdan/startpage-snake/internal/storage"
)

func TestMenuShowsRecordAndBestRuns(t *testing.T) {
	src := MenuSource{
		Record: Record{Namespace: "startpage", Score: 120},
		Best: func(id string) int {
			if id == config.VariantClassic {
				return 42
			}
			return 0
		},
	}
	view := NewMenuModel(src, core.DefaultConfig()).View()

	if !strings.Contains(view, "High score 120 (startpage)") {
		t.Errorf("menu should show the namespace record:\n%s", view)
	}
	for _, g := range registry.List() {
		if !strings.Contains(view, g.Title) {
			t.Errorf("menu is missing %q", g.Title)
		}
	}
	if strings.Count(view, "best run ") != 1 || !strings.Contains(view, "best run 42") {
		t.Errorf("menu should show one best run:\n%s", view)
	}
}

func TestMenuWithoutRecord(t *testing.T) {
	view := NewMenuModel(MenuSource{}, core.DefaultConfig()).View()
	if !strings.Contains(view, "No high score yet") {
		t.Errorf("unexpected record line:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(MenuSource{}, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should exit the menu")
	}

	games := registry.List()
	if got := next.(MenuModel).Choice(); got != games[1].ID {
		t.Errorf("Choice() = %q, want %s", got, games[1].ID)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(MenuSource{}, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(MenuSource{}, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestDifficultyPicker(t *testing.T) {
	m := NewDifficultyModel("Snake", config.DifficultyHard, 80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing selected yet")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	preset, ok := next.(DifficultyModel).Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("selected %q, want %q", preset, config.DifficultyHard)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(DifficultyModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if preset, _ := next.(DifficultyModel).Selected(); preset != config.DifficultyFixed {
		t.Errorf("selected %q, want %q", preset, config.DifficultyFixed)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(DifficultyModel).WantsBack() {
		t.Error("esc should go back")
	}
}

func TestDifficultyView(t *testing.T) {
	view := NewDifficultyModel("Snake", config.DifficultyNormal, 80, 24).View()
	if !strings.Contains(view, "SNAKE") || !strings.Contains(view, "> Normal") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

type fakeScores struct {
	entries map[string][]storage.ScoreEntry
	loaded  []string
	err     error
}

func (f *fakeScores) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	f.loaded = append(f.loaded, gameID)
	if f.err != nil {
		return nil, f.err
	}
	return f.entries[gameID], nil
}

func (f *fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	entries := f.entries[gameID]
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(entries)}
	for _, e := range entries {
		stats.TotalScore += int64(e.Score)
		stats.HighScore = max(stats.HighScore, e.Score)
	}
	if len(entries) > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(len(entries))
	}
	return stats, nil
}

func TestScoreboardOpensOnGame(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := &fakeScores{entries: map[string][]storage.ScoreEntry{
		config.VariantTurbo: {
			{GameID: config.VariantTurbo, SessionID: "abcdef12-3456", Score: 80, CreatedAt: now},
			{GameID: config.VariantTurbo, SessionID: "", Score: 40, CreatedAt: now},
		},
	}}

	m := NewScoreboardModel(scores, config.VariantTurbo, Record{Score: 80}, 100, 30)
	if len(scores.loaded) != 1 || scores.loaded[0] != config.VariantTurbo {
		t.Fatalf("loaded %v, want [%s]", scores.loaded, config.VariantTurbo)
	}

	view := m.View()
	if !strings.Contains(view, "Runs: 2  Best: 80  Average: 60.0") {
		t.Errorf("missing stats line:\n%s", view)
	}
	if !strings.Contains(view, "Record: 80") || !strings.Contains(view, "#1 ★") {
		t.Errorf("record run should be marked:\n%s", view)
	}
	if strings.Contains(view, "#2 ★") {
		t.Errorf("only the record run should be marked:\n%s", view)
	}
	if !strings.Contains(view, "abcdef12") {
		t.Errorf("missing run id column:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if scores.loaded[len(scores.loaded)-1] == config.VariantTurbo {
		t.Error("tab should switch to another game")
	}
	if !strings.Contains(next.(ScoreboardModel).View(), "No scores recorded yet") {
		t.Error("game without scores should show the empty message")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", Record{}, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("nil store should show the empty message")
	}

	failing := &fakeScores{err: errors.New("locked")}
	m = NewScoreboardModel(failing, "", Record{}, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("read failure should show the empty message")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestShortRunID(t *testing.T) {
	tests := map[string]string{
		"":                                     "-",
		"abc":                                  "abc",
		"0f8fad5b-d9cb-469f-a165-70867728950e": "0f8fad5b",
	}
	for in, want := range tests {
		if got := shortRunID(in); got != want {
			t.Errorf("shortRunID(%q) = %q, want %q", in, got, want)
		}
	}
}
