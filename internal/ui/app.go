package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/config"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/images"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/pomodoro"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/settings"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewBoard View = iota
	ViewProjects
	ViewCompleted
	ViewTrash
	ViewForm
)

// tickMsg drives the 1-second timer heartbeat
type tickMsg time.Time

// persistEveryTicks throttles timer-state writes; transitions still
// persist immediately through the views
const persistEveryTicks = 5

type App struct {
	ctx      context.Context
	co       *board.Coordinator
	timers   *pomodoro.TimerSet
	team     config.Team
	settings *settings.DB
	blobs    *images.BlobStore

	currentView View
	boardView   *views.BoardView
	projectView *views.ProjectListView
	formView    *views.TaskFormView
	historyView *views.HistoryView

	width     int
	height    int
	tickCount int

	// Last persisted board preferences, to skip redundant writes
	savedMode    string
	savedProject string
}

// NewApp wires the coordinator, timers and settings into the view tree
func NewApp(ctx context.Context, co *board.Coordinator, timers *pomodoro.TimerSet, team config.Team, prefs *settings.DB, blobs *images.BlobStore) *App {
	a := &App{
		ctx:      ctx,
		co:       co,
		timers:   timers,
		team:     team,
		settings: prefs,
		blobs:    blobs,
	}
	// Timers persisted mid-interval pick their tick back up immediately
	timers.Resume(co.Tasks())

	a.boardView = views.NewBoardView(ctx, co, timers, team)
	a.projectView = views.NewProjectListView(ctx, co)

	// Restore the layout mode and the last-open project filter
	if mode, err := prefs.Get(settings.KeyViewMode); err == nil && mode != "" {
		a.boardView.SetMode(views.Mode(mode))
	}
	if id, err := prefs.Get(settings.KeyLastProject); err == nil && id != "" {
		for _, p := range co.Projects() {
			if p.ID == id {
				a.boardView.SetProjectFilter(id)
				break
			}
		}
	}
	a.savedMode = string(a.boardView.Mode())
	a.savedProject = a.boardView.Selection().ProjectID
	return a
}

// syncBoardPrefs persists the board's layout mode and project filter when
// they change, so the next launch comes back where the user left off
func (a *App) syncBoardPrefs() {
	if mode := string(a.boardView.Mode()); mode != a.savedMode {
		a.savedMode = mode
		a.settings.Set(settings.KeyViewMode, mode)
	}
	if id := a.boardView.Selection().ProjectID; id != a.savedProject {
		a.savedProject = id
		a.settings.Set(settings.KeyLastProject, id)
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.boardView.Init(), tick())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// All views track size since they persist across switches
		a.boardView.Update(msg)
		a.projectView.Update(msg)
		if a.formView != nil {
			a.formView.Update(msg)
		}
		if a.historyView != nil {
			a.historyView.Update(msg)
		}
		return a, nil

	case tickMsg:
		return a, a.handleTick()

	case views.ShowProjects:
		a.currentView = ViewProjects
		return a, a.resize(a.projectView.Init())

	case views.ShowCompleted:
		a.currentView = ViewCompleted
		a.historyView = views.NewHistoryView(a.ctx, a.co, views.HistoryCompleted)
		return a, a.resize(a.historyView.Init())

	case views.ShowTrash:
		a.currentView = ViewTrash
		a.historyView = views.NewHistoryView(a.ctx, a.co, views.HistoryTrash)
		return a, a.resize(a.historyView.Init())

	case views.OpenTaskForm:
		a.currentView = ViewForm
		a.formView = views.NewTaskFormView(a.ctx, a.co, a.team, msg.Task, a.blobs)
		return a, a.resize(a.formView.Init())

	case views.FormClosed:
		a.currentView = ViewBoard
		a.formView = nil
		a.boardView.Refresh()
		return a, a.resize(nil)

	case views.ProjectChosen:
		a.currentView = ViewBoard
		a.boardView.SetProjectFilter(msg.ID)
		a.syncBoardPrefs()
		return a, a.resize(nil)

	case views.BackToBoard:
		a.currentView = ViewBoard
		a.boardView.Refresh()
		return a, a.resize(nil)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewBoard:
		_, cmd = a.boardView.Update(msg)
		a.syncBoardPrefs()
	case ViewProjects:
		_, cmd = a.projectView.Update(msg)
	case ViewCompleted, ViewTrash:
		if a.historyView != nil {
			_, cmd = a.historyView.Update(msg)
		}
	case ViewForm:
		if a.formView != nil {
			_, cmd = a.formView.Update(msg)
		}
	}

	return a, cmd
}

// handleTick advances every running timer by one second, records finished
// sessions and persists the in-flight reading on a throttle
func (a *App) handleTick() tea.Cmd {
	a.tickCount++

	updates, sessions := a.timers.TickAll(time.Second)
	for _, s := range sessions {
		a.co.RecordSession(a.ctx, s)
	}
	if a.tickCount%persistEveryTicks == 0 {
		for _, u := range updates {
			a.co.SaveTimerState(a.ctx, u.TaskID, u.Status, u.ElapsedMs)
		}
	}
	if len(updates) > 0 || len(sessions) > 0 {
		a.boardView.Refresh()
	}

	cmds := []tea.Cmd{tick()}
	if a.timers.SoundEnabled() {
		for _, s := range sessions {
			if s.Type == "work" {
				cmds = append(cmds, bell)
				break
			}
		}
	}
	return tea.Batch(cmds...)
}

// bell rings the terminal when a work interval completes
func bell() tea.Msg {
	fmt.Print("\a")
	return nil
}

// resize re-delivers the window size after a view switch so the incoming
// view lays itself out immediately
func (a *App) resize(init tea.Cmd) tea.Cmd {
	return tea.Batch(
		init,
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) View() string {
	switch a.currentView {
	case ViewProjects:
		return a.projectView.View()
	case ViewCompleted, ViewTrash:
		if a.historyView != nil {
			return a.historyView.View()
		}
	case ViewForm:
		if a.formView != nil {
			return a.formView.View()
		}
	}
	return a.boardView.View()
}
