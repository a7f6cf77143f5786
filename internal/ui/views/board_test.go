package views

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/config"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/pomodoro"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store/file"
)

func newTestBoard(t *testing.T) (*BoardView, *board.Coordinator) {
	t.Helper()
	gw, err := file.New(t.TempDir())
	require.NoError(t, err)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	co := board.New(gw, logger, i18n.New("es"))
	require.NoError(t, co.Load(context.Background()))
	team, err := config.LoadTeam(t.TempDir())
	require.NoError(t, err)
	timers := pomodoro.NewTimerSet(pomodoro.DefaultConfig())
	return NewBoardView(context.Background(), co, timers, team), co
}

func press(v *BoardView, r rune) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestBoardToggleCompletedOnly(t *testing.T) {
	v, _ := newTestBoard(t)

	press(v, 'o')
	assert.True(t, v.Selection().CompletedOnly)

	press(v, 'o')
	assert.False(t, v.Selection().CompletedOnly)
}

func TestBoardAssigneeFilterClearsCompletedOnly(t *testing.T) {
	v, _ := newTestBoard(t)

	press(v, 'o')
	require.True(t, v.Selection().CompletedOnly)

	press(v, 'a')
	assert.False(t, v.Selection().CompletedOnly)
	assert.NotEmpty(t, v.Selection().Assignee)
}

func TestBoardCycleMode(t *testing.T) {
	v, _ := newTestBoard(t)
	assert.Equal(t, ModeCard, v.Mode())

	press(v, 'v')
	assert.Equal(t, ModeCompact, v.Mode())
	press(v, 'v')
	assert.Equal(t, ModeList, v.Mode())
	press(v, 'v')
	assert.Equal(t, ModeUnified, v.Mode())
	press(v, 'v')
	assert.Equal(t, ModeCard, v.Mode())
}
