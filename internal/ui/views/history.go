package views

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/keys"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/styles"
)

// HistoryMode selects which archive the view shows
type HistoryMode int

const (
	HistoryCompleted HistoryMode = iota
	HistoryTrash
)

// BackToBoard tells the app to return to the kanban view
type BackToBoard struct{}

// HistoryView lists completed or deleted tasks with restore and permanent
// delete actions
type HistoryView struct {
	ctx    context.Context
	co     *board.Coordinator
	mode   HistoryMode
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int
	cursor int

	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string
}

// NewHistoryView creates the archive view for one mode
func NewHistoryView(ctx context.Context, co *board.Coordinator, mode HistoryMode) *HistoryView {
	return &HistoryView{
		ctx:    ctx,
		co:     co,
		mode:   mode,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
	}
}

func (v *HistoryView) tasks() []models.Task {
	if v.mode == HistoryCompleted {
		return v.co.CompletedTasks()
	}
	return v.co.DeletedTasks()
}

func (v *HistoryView) Init() tea.Cmd {
	if v.mode == HistoryCompleted {
		v.co.LoadCompleted(v.ctx)
	} else {
		v.co.LoadDeleted(v.ctx)
	}
	return nil
}

func (v *HistoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return BackToBoard{} }

		case key.Matches(msg, v.keys.Up):
			v.cursor = clamp(v.cursor-1, 0, max(len(v.tasks())-1, 0))
			return v, nil

		case key.Matches(msg, v.keys.Down):
			v.cursor = clamp(v.cursor+1, 0, max(len(v.tasks())-1, 0))
			return v, nil

		case key.Matches(msg, v.keys.Restore):
			if t, ok := v.selected(); ok {
				if v.mode == HistoryCompleted {
					v.co.RestoreCompletedTask(v.ctx, t.ID)
				} else {
					v.co.RestoreDeletedTask(v.ctx, t.ID)
				}
				v.cursor = clamp(v.cursor, 0, max(len(v.tasks())-1, 0))
			}
			return v, nil

		case key.Matches(msg, v.keys.Delete):
			if t, ok := v.selected(); ok {
				v.confirmingDelete = true
				v.deleteTargetID = t.ID
				v.deleteTargetName = t.Title
			}
			return v, nil
		}
	}

	return v, nil
}

func (v *HistoryView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if v.mode == HistoryCompleted {
			v.co.PermanentlyDeleteCompletedTask(v.ctx, v.deleteTargetID)
		} else {
			v.co.PermanentlyDeleteTask(v.ctx, v.deleteTargetID)
		}
		v.cursor = clamp(v.cursor, 0, max(len(v.tasks())-1, 0))
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *HistoryView) selected() (models.Task, bool) {
	tasks := v.tasks()
	if v.cursor < 0 || v.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[v.cursor], true
}

// View renders the archive list
func (v *HistoryView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	s := v.styles
	heading := "Tareas completadas"
	stamp := "completada"
	if v.mode == HistoryTrash {
		heading = "Papelera"
		stamp = "eliminada"
	}

	tasks := v.tasks()
	lines := []string{s.Title.Render(heading), ""}
	if len(tasks) == 0 {
		lines = append(lines, s.TitleMuted.Render("Nada por aquí."))
	}
	for i, t := range tasks {
		ts := t.CompletedAt
		if v.mode == HistoryTrash {
			ts = t.DeletedAt
		}
		when := ""
		if ts > 0 {
			when = time.UnixMilli(ts).Format("02 Jan 2006")
		}
		line := fmt.Sprintf("%s  %s", t.Title, s.CardMeta.Render(fmt.Sprintf("%s %s", stamp, when)))
		if i == v.cursor {
			lines = append(lines, s.ListSelected.Render(line))
		} else {
			lines = append(lines, s.ListItem.Render(line))
		}
	}

	if errMsg := v.co.Err(); errMsg != "" {
		lines = append(lines, "", s.ErrorBar.Render(errMsg))
	}

	lines = append(lines, "", s.Help.Render(
		fmt.Sprintf("%s restaurar • %s eliminar definitivamente • %s volver",
			s.HelpKey.Render("r"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("esc"),
		),
	))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *HistoryView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("¿Eliminar definitivamente?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" no se podrá recuperar.", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Sí "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
