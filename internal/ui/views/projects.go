package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/filter"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/keys"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/styles"
)

// ProjectChosen asks the app to filter the board by this project; empty ID
// clears the filter
type ProjectChosen struct {
	ID string
}

var projectColors = []string{
	"#7aa2f7", "#bb9af7", "#f7768e", "#9ece6a", "#e0af68", "#7dcfff",
}

type projectItem struct {
	project models.Project
	count   int
}

func (i projectItem) Title() string       { return i.project.Name }
func (i projectItem) Description() string { return fmt.Sprintf("%d tareas activas", i.count) }
func (i projectItem) FilterValue() string { return i.project.Name }

type projectDelegate struct {
	styles *styles.Styles
	width  int
}

func (d projectDelegate) Height() int                               { return 2 }
func (d projectDelegate) Spacing() int                              { return 1 }
func (d projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	p, ok := item.(projectItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}

	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.project.Color)).Render("●")
	title := titleStyle.Render(dot + " " + p.Title())
	desc := descStyle.Render("  " + p.Description())

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

// ProjectListView manages the project set: choose a board filter, create,
// rename, reorder and delete
type ProjectListView struct {
	ctx      context.Context
	co       *board.Coordinator
	list     list.Model
	delegate *projectDelegate
	styles   *styles.Styles
	keys     keys.KeyMap

	width  int
	height int

	creating         bool
	renaming         bool
	renameTargetID   string
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string
	nameInput        textinput.Model
	colorIdx         int
}

// NewProjectListView creates the project manager
func NewProjectListView(ctx context.Context, co *board.Coordinator) *ProjectListView {
	s := styles.NewStyles()

	nameInput := textinput.New()
	nameInput.Placeholder = "Nombre del proyecto"
	nameInput.CharLimit = 100

	delegate := &projectDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Proyectos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	v := &ProjectListView{
		ctx:       ctx,
		co:        co,
		list:      l,
		delegate:  delegate,
		styles:    s,
		keys:      keys.DefaultKeyMap(),
		nameInput: nameInput,
	}
	v.reload()
	return v
}

func (v *ProjectListView) reload() {
	counts := filter.CountByProject(v.co.Tasks())
	projects := v.co.Projects()
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p, count: counts[p.ID]}
	}
	v.list.SetItems(items)
}

func (v *ProjectListView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *ProjectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.creating || v.renaming {
			return v.updateEditing(msg)
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return BackToBoard{} }

		case key.Matches(msg, v.keys.New):
			v.creating = true
			v.colorIdx = len(v.co.Projects()) % len(projectColors)
			v.nameInput.Reset()
			v.nameInput.Focus()
			return v, textinput.Blink

		case key.Matches(msg, v.keys.Edit):
			if item, ok := v.list.SelectedItem().(projectItem); ok {
				v.renaming = true
				v.renameTargetID = item.project.ID
				v.colorIdx = 0
				for i, c := range projectColors {
					if c == item.project.Color {
						v.colorIdx = i
						break
					}
				}
				v.nameInput.SetValue(item.project.Name)
				v.nameInput.Focus()
				return v, textinput.Blink
			}
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if item, ok := v.list.SelectedItem().(projectItem); ok {
				return v, func() tea.Msg { return ProjectChosen{ID: item.project.ID} }
			}
			return v, nil

		case msg.String() == "0":
			return v, func() tea.Msg { return ProjectChosen{ID: ""} }

		case msg.String() == "J":
			v.moveSelected(1)
			return v, nil

		case msg.String() == "K":
			v.moveSelected(-1)
			return v, nil

		case key.Matches(msg, v.keys.Delete):
			if item, ok := v.list.SelectedItem().(projectItem); ok {
				v.confirmingDelete = true
				v.deleteTargetID = item.project.ID
				v.deleteTargetName = item.project.Name
				return v, nil
			}
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// moveSelected swaps the selected project with its neighbor and persists
// the full ordering
func (v *ProjectListView) moveSelected(dir int) {
	idx := v.list.Index()
	projects := v.co.Projects()
	target := idx + dir
	if idx < 0 || idx >= len(projects) || target < 0 || target >= len(projects) {
		return
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	ids[idx], ids[target] = ids[target], ids[idx]

	v.co.ReorderProjects(v.ctx, ids)
	v.reload()
	v.list.Select(clamp(target, 0, len(projects)-1))
}

func (v *ProjectListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		v.co.DeleteProject(v.ctx, v.deleteTargetID)
		v.reload()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *ProjectListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		v.renaming = false
		return v, nil

	case msg.String() == "ctrl+r":
		v.colorIdx = (v.colorIdx + 1) % len(projectColors)
		return v, nil

	case msg.String() == "ctrl+s", key.Matches(msg, v.keys.Enter):
		name := strings.TrimSpace(v.nameInput.Value())
		if name == "" {
			return v, nil
		}
		if v.creating {
			v.co.CreateProject(v.ctx, models.Project{
				Name:  name,
				Color: projectColors[v.colorIdx],
			})
		} else {
			color := projectColors[v.colorIdx]
			v.co.UpdateProject(v.ctx, v.renameTargetID, store.ProjectPatch{Name: &name, Color: &color})
		}
		v.creating = false
		v.renaming = false
		v.reload()
		return v, nil
	}

	var cmd tea.Cmd
	v.nameInput, cmd = v.nameInput.Update(msg)
	return v, cmd
}

// View renders the project manager
func (v *ProjectListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.creating || v.renaming {
		return v.renderForm()
	}

	lines := []string{v.list.View()}
	if errMsg := v.co.Err(); errMsg != "" {
		lines = append(lines, v.styles.ErrorBar.Render(errMsg))
	}
	lines = append(lines, v.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *ProjectListView) renderForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	heading := "Nuevo proyecto"
	if v.renaming {
		heading = "Renombrar proyecto"
	}

	inputWidth := clamp(contentWidth-6, 20, 50)
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(projectColors[v.colorIdx])).Render("●")

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(heading),
		"",
		"Nombre:",
		s.InputFocused.Width(inputWidth).Render(v.nameInput.View()),
		"",
		"Color: "+dot,
		"",
		s.TitleMuted.Render("↵: guardar • Ctrl+R: color • Esc: cancelar"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ProjectListView) renderHelp() string {
	s := v.styles
	return s.Help.Render(
		fmt.Sprintf("%s filtrar tablero • %s todos • %s nuevo • %s renombrar • %s reordenar • %s eliminar • %s volver",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("0"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("J/K"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("esc"),
		),
	)
}

func (v *ProjectListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("¿Eliminar proyecto?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" y sus tareas activas desaparecerán del tablero.", v.deleteTargetName)),
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
