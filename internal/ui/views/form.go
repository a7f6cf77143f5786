package views

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/config"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/images"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/keys"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/styles"
)

// FormClosed tells the app the task form is done, saved or not
type FormClosed struct{}

var priorities = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// TaskFormView edits one task, new or existing
type TaskFormView struct {
	ctx    context.Context
	co     *board.Coordinator
	team   config.Team
	blobs  *images.BlobStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	editing  *models.Task // nil when creating
	title    textinput.Model
	desc     textarea.Model
	due      textinput.Model
	focusIdx int // 0=title, 1=desc, 2=due, 3=save

	projectIdx  int
	assigneeIdx int // -1 = unassigned
	priorityIdx int
	presetIdx   int // -1 = default

	// Image attachment
	attached  []string
	attaching bool
	imgPath   textinput.Model
	imgErr    string
}

// NewTaskFormView builds the form; pass nil to create a task
func NewTaskFormView(ctx context.Context, co *board.Coordinator, team config.Team, task *models.Task, blobs *images.BlobStore) *TaskFormView {
	title := textinput.New()
	title.Placeholder = "Título de la tarea"
	title.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Descripción"
	desc.CharLimit = 2000
	desc.SetWidth(50)
	desc.SetHeight(3)
	desc.ShowLineNumbers = false

	due := textinput.New()
	due.Placeholder = "Fecha límite (YYYY-MM-DD)"
	due.CharLimit = 10

	imgPath := textinput.New()
	imgPath.Placeholder = "Ruta del archivo de imagen"
	imgPath.CharLimit = 500

	v := &TaskFormView{
		ctx:         ctx,
		co:          co,
		team:        team,
		blobs:       blobs,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		editing:     task,
		title:       title,
		desc:        desc,
		due:         due,
		imgPath:     imgPath,
		assigneeIdx: -1,
		priorityIdx: 1,
		presetIdx:   -1,
	}

	if task != nil {
		v.attached = append([]string(nil), task.Images...)
		v.title.SetValue(task.Title)
		v.desc.SetValue(task.Description)
		if task.DueDate > 0 {
			v.due.SetValue(time.UnixMilli(task.DueDate).Format("2006-01-02"))
		}
		for i, p := range co.Projects() {
			if p.ID == task.ProjectID {
				v.projectIdx = i
			}
		}
		for i, m := range team.Members {
			if m.Name == task.Assignee {
				v.assigneeIdx = i
			}
		}
		for i, p := range priorities {
			if p == task.Priority {
				v.priorityIdx = i
			}
		}
		for i, p := range team.Presets {
			if p.ID == task.Preset {
				v.presetIdx = i
			}
		}
	}

	v.title.Focus()
	return v
}

func (v *TaskFormView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *TaskFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.attaching {
			return v.updateAttaching(msg)
		}
		switch {
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return FormClosed{} }

		case msg.String() == "ctrl+s":
			return v.save()

		case msg.String() == "ctrl+i":
			v.attaching = true
			v.imgErr = ""
			v.imgPath.Reset()
			v.imgPath.Focus()
			return v, textinput.Blink

		case msg.String() == "shift+tab":
			v.focusIdx = (v.focusIdx + 3) % 4
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Tab):
			v.focusIdx = (v.focusIdx + 1) % 4
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx == 3 {
				return v.save()
			}
			v.focusIdx++
			v.updateFocus()
			return v, nil

		// Cycle pickers work from any focus; they use keys the text
		// fields never need
		case msg.String() == "ctrl+p":
			if n := len(v.co.Projects()); n > 0 {
				v.projectIdx = (v.projectIdx + 1) % n
			}
			return v, nil
		case msg.String() == "ctrl+a":
			v.assigneeIdx++
			if v.assigneeIdx >= len(v.team.Members) {
				v.assigneeIdx = -1
			}
			return v, nil
		case msg.String() == "ctrl+r":
			v.priorityIdx = (v.priorityIdx + 1) % len(priorities)
			return v, nil
		case msg.String() == "ctrl+t":
			v.presetIdx++
			if v.presetIdx >= len(v.team.Presets) {
				v.presetIdx = -1
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.title, cmd = v.title.Update(msg)
	case 1:
		v.desc, cmd = v.desc.Update(msg)
	case 2:
		v.due, cmd = v.due.Update(msg)
	}
	return v, cmd
}

func (v *TaskFormView) updateAttaching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.attaching = false
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if path := strings.TrimSpace(v.imgPath.Value()); path != "" {
			if v.attachImage(path) {
				v.attaching = false
			}
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.imgPath, cmd = v.imgPath.Update(msg)
	return v, cmd
}

// attachImage reads, validates and stores one image. The count ceiling is
// checked before any read or encode work happens.
func (v *TaskFormView) attachImage(path string) bool {
	if len(v.attached) >= models.MaxTaskImages {
		v.imgErr = fmt.Sprintf("Máximo %d imágenes por tarea.", models.MaxTaskImages)
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		v.imgErr = "No se pudo leer el archivo."
		return false
	}
	ref, err := images.Attach(v.blobs, data)
	if err != nil {
		v.imgErr = "La imagen no es válida o es demasiado grande."
		return false
	}
	v.attached = append(v.attached, ref)
	v.imgErr = ""
	return true
}

func (v *TaskFormView) save() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(v.title.Value())
	if title == "" {
		return v, nil
	}

	projects := v.co.Projects()
	projectID := ""
	if v.projectIdx < len(projects) {
		projectID = projects[v.projectIdx].ID
	}
	assignee := ""
	if v.assigneeIdx >= 0 && v.assigneeIdx < len(v.team.Members) {
		assignee = v.team.Members[v.assigneeIdx].Name
	}
	preset := ""
	if v.presetIdx >= 0 && v.presetIdx < len(v.team.Presets) {
		preset = v.team.Presets[v.presetIdx].ID
	}
	var dueDate int64
	if raw := strings.TrimSpace(v.due.Value()); raw != "" {
		if d, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
			dueDate = d.UnixMilli()
		}
	}
	description := v.desc.Value()
	priority := priorities[v.priorityIdx]

	if v.editing == nil {
		draft := models.Task{
			Title:       title,
			Description: description,
			ProjectID:   projectID,
			Assignee:    assignee,
			Priority:    priority,
			Preset:      preset,
			DueDate:     dueDate,
			Images:      v.attached,
		}
		v.co.CreateTask(v.ctx, draft)
	} else {
		imgs := append([]string(nil), v.attached...)
		patch := store.TaskPatch{
			Title:       &title,
			Description: &description,
			ProjectID:   &projectID,
			Assignee:    &assignee,
			Priority:    &priority,
			Preset:      &preset,
			DueDate:     &dueDate,
			Images:      &imgs,
		}
		v.co.UpdateTask(v.ctx, v.editing.ID, patch)
	}
	return v, func() tea.Msg { return FormClosed{} }
}

func (v *TaskFormView) updateFocus() {
	v.title.Blur()
	v.desc.Blur()
	v.due.Blur()
	switch v.focusIdx {
	case 0:
		v.title.Focus()
	case 1:
		v.desc.Focus()
	case 2:
		v.due.Focus()
	}
}

// View renders the form
func (v *TaskFormView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	titleStyle, descStyle, dueStyle, btnStyle := s.Input, s.Input, s.Input, s.Button
	switch v.focusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		dueStyle = s.InputFocused
	case 3:
		btnStyle = s.ButtonFocused
	}

	heading := "Nueva tarea"
	if v.editing != nil {
		heading = "Editar tarea"
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	sections := []string{
		s.Title.Render(heading),
		"",
		"Título:",
		titleStyle.Width(inputWidth).Render(v.title.View()),
		"",
		"Descripción:",
		descStyle.Width(inputWidth).Render(v.desc.View()),
		"",
		"Fecha límite:",
		dueStyle.Width(inputWidth).Render(v.due.View()),
		"",
		v.renderPickers(),
		"",
	}
	if v.attaching {
		sections = append(sections,
			"Adjuntar imagen:",
			s.InputFocused.Width(inputWidth).Render(v.imgPath.View()),
			"",
		)
	}
	if v.imgErr != "" {
		sections = append(sections, s.ErrorBar.Render(v.imgErr), "")
	}
	sections = append(sections,
		btnStyle.Render(" Guardar "),
		"",
		s.TitleMuted.Render("Tab: siguiente • Ctrl+S: guardar • Esc: cancelar"),
		s.TitleMuted.Render("Ctrl+P proyecto • Ctrl+A persona • Ctrl+R prioridad • Ctrl+T preset • Ctrl+I imagen"),
	)
	form := lipgloss.JoinVertical(lipgloss.Left, sections...)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskFormView) renderPickers() string {
	s := v.styles

	project := "(sin proyecto)"
	if projects := v.co.Projects(); v.projectIdx < len(projects) {
		project = projects[v.projectIdx].Name
	}
	assignee := "(sin asignar)"
	if v.assigneeIdx >= 0 && v.assigneeIdx < len(v.team.Members) {
		assignee = v.team.Members[v.assigneeIdx].Name
	}
	preset := "(25 min)"
	if v.presetIdx >= 0 && v.presetIdx < len(v.team.Presets) {
		preset = v.team.Presets[v.presetIdx].Label
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.CardMeta.Render("Proyecto:  ")+project,
		s.CardMeta.Render("Persona:   ")+assignee,
		s.CardMeta.Render("Prioridad: ")+string(priorities[v.priorityIdx]),
		s.CardMeta.Render("Preset:    ")+preset,
		s.CardMeta.Render("Imágenes:  ")+fmt.Sprintf("%d/%d", len(v.attached), models.MaxTaskImages),
	)
}
