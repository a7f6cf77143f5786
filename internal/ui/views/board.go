package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/config"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/filter"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/pomodoro"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/keys"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Messages the board emits toward the app

// ShowProjects asks the app to open the project manager
type ShowProjects struct{}

// ShowCompleted asks the app to open the completed history
type ShowCompleted struct{}

// ShowTrash asks the app to open the trash view
type ShowTrash struct{}

// OpenTaskForm asks the app to open the task form; Task is nil for create
type OpenTaskForm struct {
	Task *models.Task
}

// Mode selects how the filtered tasks are laid out
type Mode string

const (
	ModeCard    Mode = "card"
	ModeCompact Mode = "compact"
	ModeList    Mode = "list"
	ModeUnified Mode = "unified"
)

var modeCycle = []Mode{ModeCard, ModeCompact, ModeList, ModeUnified}

var modeLabels = map[Mode]string{
	ModeCard:    "tarjetas",
	ModeCompact: "compacta",
	ModeList:    "lista",
	ModeUnified: "unificada",
}

var dateBuckets = []filter.DateBucket{
	filter.BucketAll,
	filter.BucketOverdue,
	filter.BucketToday,
	filter.BucketWeek,
	filter.BucketMonth,
}

var bucketLabels = map[filter.DateBucket]string{
	filter.BucketAll:     "Todas",
	filter.BucketOverdue: "Vencidas",
	filter.BucketToday:   "Hoy",
	filter.BucketWeek:    "Semana",
	filter.BucketMonth:   "Mes",
}

// BoardView renders the kanban columns and drives task-level actions
type BoardView struct {
	ctx    context.Context
	co     *board.Coordinator
	timers *pomodoro.TimerSet
	team   config.Team
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode   Mode
	sel    filter.Selection
	result filter.Result

	colIdx int
	rowIdx int

	// Comment entry
	commenting      bool
	commentInput    textarea.Model
	commentTaskID   string
	commentAuthor   string

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	showHelpPopup bool
}

// NewBoardView creates the board over an already-loaded coordinator
func NewBoardView(ctx context.Context, co *board.Coordinator, timers *pomodoro.TimerSet, team config.Team) *BoardView {
	comment := textarea.New()
	comment.Placeholder = "Comentario..."
	comment.CharLimit = 1000
	comment.SetWidth(50)
	comment.SetHeight(3)
	comment.ShowLineNumbers = false

	author := ""
	if len(team.Members) > 0 {
		author = team.Members[0].Name
	}

	v := &BoardView{
		ctx:           ctx,
		co:            co,
		timers:        timers,
		team:          team,
		styles:        styles.NewStyles(),
		keys:          keys.DefaultKeyMap(),
		commentInput:  comment,
		commentAuthor: author,
		mode:          ModeCard,
		sel:           filter.Selection{Bucket: filter.BucketAll},
	}
	v.Refresh()
	return v
}

// Selection exposes the active filters so sibling views stay consistent
func (v *BoardView) Selection() filter.Selection { return v.sel }

// Mode returns the current layout mode
func (v *BoardView) Mode() Mode { return v.mode }

// SetMode switches the layout mode; unknown values fall back to cards
func (v *BoardView) SetMode(m Mode) {
	switch m {
	case ModeCard, ModeCompact, ModeList, ModeUnified:
		v.mode = m
	default:
		v.mode = ModeCard
	}
	v.Refresh()
}

// SetProjectFilter applies a project choice made in the project manager
func (v *BoardView) SetProjectFilter(projectID string) {
	v.sel.ProjectID = projectID
	v.Refresh()
}

// Refresh re-runs the filter pipeline over the coordinator state. The
// unified mode shows every project, so the project filter is dropped there.
func (v *BoardView) Refresh() {
	sel := v.sel
	if v.mode == ModeUnified {
		sel.ProjectID = ""
	}
	v.result = filter.Apply(v.co.Tasks(), sel, time.Now())
	v.clampCursor()
}

func (v *BoardView) Init() tea.Cmd {
	return nil
}

func (v *BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.commenting {
			return v.updateCommenting(msg)
		}
		return v.updateBrowsing(msg)
	}

	return v, nil
}

func (v *BoardView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil

	case key.Matches(msg, v.keys.Up):
		v.rowIdx--
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.Down):
		v.rowIdx++
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.Left):
		v.colIdx--
		v.rowIdx = 0
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.Right):
		v.colIdx++
		v.rowIdx = 0
		v.clampCursor()
		return v, nil

	case key.Matches(msg, v.keys.MoveLeft):
		return v.moveSelected(-1)

	case key.Matches(msg, v.keys.MoveRight):
		return v.moveSelected(1)

	case key.Matches(msg, v.keys.Complete):
		if task, ok := v.selectedTask(); ok {
			v.co.CompleteTask(v.ctx, task.ID)
			v.Refresh()
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if task, ok := v.selectedTask(); ok {
			v.confirmingDelete = true
			v.deleteTargetID = task.ID
			v.deleteTargetName = task.Title
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		return v, func() tea.Msg { return OpenTaskForm{} }

	case key.Matches(msg, v.keys.Edit):
		if task, ok := v.selectedTask(); ok {
			t := task
			return v, func() tea.Msg { return OpenTaskForm{Task: &t} }
		}
		return v, nil

	case key.Matches(msg, v.keys.Comment):
		if task, ok := v.selectedTask(); ok {
			v.commenting = true
			v.commentTaskID = task.ID
			v.commentInput.Reset()
			v.commentInput.Focus()
			return v, textarea.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Timer):
		return v.toggleTimer()

	case key.Matches(msg, v.keys.TimerReset):
		if task, ok := v.selectedTask(); ok {
			if e, found := v.timers.Get(task.ID); found {
				u := e.Reset()
				v.co.SaveTimerState(v.ctx, u.TaskID, u.Status, u.ElapsedMs)
				v.Refresh()
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Break):
		if task, ok := v.selectedTask(); ok {
			e := v.timers.Ensure(task)
			u := e.StartBreak()
			v.co.SaveTimerState(v.ctx, u.TaskID, u.Status, u.ElapsedMs)
			v.Refresh()
		}
		return v, nil

	case key.Matches(msg, v.keys.FilterProject):
		v.cycleProjectFilter()
		return v, nil

	case key.Matches(msg, v.keys.FilterAssignee):
		v.cycleAssigneeFilter()
		return v, nil

	case key.Matches(msg, v.keys.FilterDate):
		v.cycleDateFilter()
		return v, nil

	case key.Matches(msg, v.keys.FilterDone):
		v.sel.CompletedOnly = !v.sel.CompletedOnly
		v.Refresh()
		return v, nil

	case key.Matches(msg, v.keys.ViewMode):
		v.cycleMode()
		return v, nil

	case key.Matches(msg, v.keys.Projects):
		return v, func() tea.Msg { return ShowProjects{} }

	case key.Matches(msg, v.keys.Completed):
		return v, func() tea.Msg { return ShowCompleted{} }

	case key.Matches(msg, v.keys.Trash):
		return v, func() tea.Msg { return ShowTrash{} }

	case key.Matches(msg, v.keys.Back):
		if v.co.Err() != "" {
			v.co.DismissError()
		}
		return v, nil
	}

	return v, nil
}

func (v *BoardView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if err := v.co.SoftDeleteTask(v.ctx, v.deleteTargetID); err == nil {
			v.timers.Remove(v.deleteTargetID)
		}
		v.Refresh()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *BoardView) updateCommenting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.commenting = false
		return v, nil

	case msg.String() == "ctrl+s":
		text := strings.TrimSpace(v.commentInput.Value())
		if text != "" {
			v.co.AddComment(v.ctx, v.commentTaskID, text, v.commentAuthor)
			v.Refresh()
		}
		v.commenting = false
		return v, nil
	}

	var cmd tea.Cmd
	v.commentInput, cmd = v.commentInput.Update(msg)
	return v, cmd
}

// toggleTimer starts a paused/idle timer or pauses a running one
func (v *BoardView) toggleTimer() (tea.Model, tea.Cmd) {
	task, ok := v.selectedTask()
	if !ok {
		return v, nil
	}
	e := v.timers.Ensure(task)
	var u pomodoro.Update
	if e.Running() {
		u = e.Pause()
	} else {
		u = e.Start()
	}
	v.co.SaveTimerState(v.ctx, u.TaskID, u.Status, u.ElapsedMs)
	v.Refresh()
	return v, nil
}

func (v *BoardView) moveSelected(dir int) (tea.Model, tea.Cmd) {
	task, ok := v.selectedTask()
	if !ok {
		return v, nil
	}
	cols := v.co.Columns()
	cur := -1
	for i, c := range cols {
		if c.Status == task.Status {
			cur = i
			break
		}
	}
	next := cur + dir
	if cur < 0 || next < 0 || next >= len(cols) {
		return v, nil
	}
	target := cols[next].Status
	if target == models.StatusDone {
		v.co.CompleteTask(v.ctx, task.ID)
	} else {
		v.co.SetStatus(v.ctx, task.ID, target)
	}
	v.Refresh()
	return v, nil
}

func (v *BoardView) cycleProjectFilter() {
	projects := v.co.Projects()
	if len(projects) == 0 {
		return
	}
	if v.sel.ProjectID == "" {
		v.sel.ProjectID = projects[0].ID
	} else {
		next := ""
		for i, p := range projects {
			if p.ID == v.sel.ProjectID && i+1 < len(projects) {
				next = projects[i+1].ID
				break
			}
		}
		v.sel.ProjectID = next
	}
	v.Refresh()
}

func (v *BoardView) cycleAssigneeFilter() {
	// Picking a person answers "what is X working on", so the
	// completed-only lens drops
	v.sel.CompletedOnly = false
	members := v.team.Members
	if len(members) == 0 {
		v.Refresh()
		return
	}
	if v.sel.Assignee == "" {
		v.sel.Assignee = members[0].Name
	} else {
		next := ""
		for i, m := range members {
			if m.Name == v.sel.Assignee && i+1 < len(members) {
				next = members[i+1].Name
				break
			}
		}
		v.sel.Assignee = next
	}
	v.Refresh()
}

func (v *BoardView) cycleMode() {
	for i, m := range modeCycle {
		if m == v.mode {
			v.mode = modeCycle[(i+1)%len(modeCycle)]
			v.Refresh()
			return
		}
	}
	v.mode = ModeCard
	v.Refresh()
}

func (v *BoardView) cycleDateFilter() {
	for i, b := range dateBuckets {
		if b == v.sel.Bucket {
			v.sel.Bucket = dateBuckets[(i+1)%len(dateBuckets)]
			v.Refresh()
			return
		}
	}
	v.sel.Bucket = filter.BucketAll
	v.Refresh()
}

func (v *BoardView) columnTasks(status string) []models.Task {
	return filter.ByStatus(v.result.Tasks, status)
}

func (v *BoardView) selectedTask() (models.Task, bool) {
	cols := v.co.Columns()
	if v.colIdx < 0 || v.colIdx >= len(cols) {
		return models.Task{}, false
	}
	tasks := v.columnTasks(cols[v.colIdx].Status)
	if v.rowIdx < 0 || v.rowIdx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[v.rowIdx], true
}

func (v *BoardView) clampCursor() {
	cols := v.co.Columns()
	if len(cols) == 0 {
		v.colIdx, v.rowIdx = 0, 0
		return
	}
	v.colIdx = clamp(v.colIdx, 0, len(cols)-1)
	tasks := v.columnTasks(cols[v.colIdx].Status)
	v.rowIdx = clamp(v.rowIdx, 0, max(len(tasks)-1, 0))
}

// View renders the board
func (v *BoardView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	var sections []string
	sections = append(sections, v.renderHeader())
	if v.mode == ModeList || v.mode == ModeUnified {
		sections = append(sections, v.renderList())
	} else {
		sections = append(sections, v.renderColumns())
	}
	if v.commenting {
		sections = append(sections, v.renderCommentBox())
	}
	if errMsg := v.co.Err(); errMsg != "" {
		sections = append(sections, v.styles.ErrorBar.Render(errMsg+"  (esc)"))
	}
	sections = append(sections, v.renderHelp())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.CenterView(content, v.width, v.height)
}

func (v *BoardView) renderHeader() string {
	s := v.styles
	c := v.result.Counts

	project := "Todos los proyectos"
	for _, p := range v.co.Projects() {
		if p.ID == v.sel.ProjectID {
			project = p.Name
			break
		}
	}
	assignee := v.sel.Assignee
	if assignee == "" {
		assignee = "Todos"
	}

	badges := fmt.Sprintf(" %s %s %s ",
		s.BadgeAlert.Render(fmt.Sprintf("vencidas %d", c.Overdue)),
		s.Badge.Render(fmt.Sprintf("hoy %d", c.Today)),
		s.Badge.Render(fmt.Sprintf("semana %d", c.Week)),
	)

	if v.mode == ModeUnified {
		project = "Todos los proyectos"
	}

	lens := bucketLabels[v.sel.Bucket]
	if v.sel.CompletedOnly {
		lens += " · solo completadas"
	}

	left := s.Title.Render("Tablero") + "  " +
		s.TitleMuted.Render(fmt.Sprintf("%s · %s · %s · vista %s",
			project, assignee, lens, modeLabels[v.mode]))

	return s.TitleBar.Render(left + "  " + badges)
}

func (v *BoardView) renderColumns() string {
	cols := v.co.Columns()
	if len(cols) == 0 {
		return v.styles.TitleMuted.Render("Sin columnas")
	}

	contentWidth := styles.ContentWidth(v.width)
	colWidth := max(contentWidth/len(cols)-2, 18)
	colHeight := max(v.height-8, 8)

	rendered := make([]string, 0, len(cols))
	for i, col := range cols {
		rendered = append(rendered, v.renderColumn(col, i, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *BoardView) renderColumn(col models.BoardColumn, idx, width, height int) string {
	s := v.styles
	tasks := v.columnTasks(col.Status)

	header := s.ColumnHeader.Render(fmt.Sprintf("%s (%d)", col.Name, len(tasks)))

	lines := []string{header}
	for i, t := range tasks {
		selected := idx == v.colIdx && i == v.rowIdx
		if v.mode == ModeCompact {
			lines = append(lines, v.renderRow(t, selected, width-4, false))
		} else {
			lines = append(lines, v.renderCard(t, selected, width-4))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	style := s.Column
	if idx == v.colIdx {
		style = s.ColumnFocused
	}
	return style.Width(width).Height(height).Render(body)
}

func (v *BoardView) renderCard(t models.Task, selected bool, width int) string {
	s := v.styles

	title := t.Title
	if len(title) > width && width > 3 {
		title = title[:width-1] + "…"
	}

	dot := lipgloss.NewStyle().Foreground(styles.PriorityColor(string(t.Priority))).Render("●")

	meta := ""
	if t.Assignee != "" {
		if m, ok := v.team.Member(t.Assignee); ok {
			meta = m.Initials
		} else {
			meta = t.Assignee
		}
	}
	now := time.Now()
	if filter.IsOverdue(t.DueDate, now) && t.Status != models.StatusDone {
		meta += " " + s.Overdue.Render("¡vencida!")
	} else if filter.IsDueSoon(t.DueDate, now) {
		meta += " " + s.DueSoon.Render("pronto")
	}
	if timer := v.renderTimer(t); timer != "" {
		meta += " " + timer
	}
	if len(t.Comments) > 0 {
		meta += fmt.Sprintf(" %d", len(t.Comments))
	}

	card := s.CardTitle.Render(dot+" "+title) + "\n" + s.CardMeta.Render("  "+strings.TrimSpace(meta))
	if selected {
		return s.CardSelected.Width(width).Render(card)
	}
	return s.Card.Width(width).Render(card)
}

// renderList stacks the columns vertically as one-line rows; the unified
// mode also names each task's project
func (v *BoardView) renderList() string {
	s := v.styles
	cols := v.co.Columns()
	if len(cols) == 0 {
		return s.TitleMuted.Render("Sin columnas")
	}

	width := max(styles.ContentWidth(v.width)-4, 30)
	withProject := v.mode == ModeUnified

	var lines []string
	for i, col := range cols {
		tasks := v.columnTasks(col.Status)
		header := s.ColumnHeader.Render(fmt.Sprintf("%s (%d)", col.Name, len(tasks)))
		if i == v.colIdx {
			header = s.Title.Render("» ") + header
		}
		lines = append(lines, header)
		for j, t := range tasks {
			selected := i == v.colIdx && j == v.rowIdx
			lines = append(lines, v.renderRow(t, selected, width, withProject))
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderRow is the one-line card used by the compact and list modes
func (v *BoardView) renderRow(t models.Task, selected bool, width int, withProject bool) string {
	s := v.styles

	dot := lipgloss.NewStyle().Foreground(styles.PriorityColor(string(t.Priority))).Render("●")

	line := dot + " " + t.Title
	if withProject {
		for _, p := range v.co.Projects() {
			if p.ID == t.ProjectID {
				line += s.CardMeta.Render(" [" + p.Name + "]")
				break
			}
		}
	}
	if t.Assignee != "" {
		if m, ok := v.team.Member(t.Assignee); ok {
			line += s.CardMeta.Render(" " + m.Initials)
		}
	}
	now := time.Now()
	if filter.IsOverdue(t.DueDate, now) && t.Status != models.StatusDone {
		line += " " + s.Overdue.Render("¡vencida!")
	}
	if timer := v.renderTimer(t); timer != "" {
		line += " " + timer
	}

	if selected {
		return s.CardSelected.Width(width).Render(line)
	}
	return s.Card.Width(width).Render(line)
}

// renderTimer shows the count-up reading for tasks with a live engine
func (v *BoardView) renderTimer(t models.Task) string {
	s := v.styles
	e, ok := v.timers.Get(t.ID)
	if !ok {
		if t.Pomodoro == models.PomodoroRunning || t.Pomodoro == models.PomodoroPaused {
			return s.TimerPaused.Render(formatElapsed(t.ElapsedMs))
		}
		return ""
	}
	switch e.Status() {
	case models.PomodoroRunning:
		return s.TimerRunning.Render("▶ " + formatElapsed(e.ElapsedMs()))
	case models.PomodoroPaused:
		return s.TimerPaused.Render("⏸ " + formatElapsed(e.ElapsedMs()))
	case models.PomodoroBreak:
		return s.TimerBreak.Render("☕ " + formatElapsed(e.ElapsedMs()))
	}
	return ""
}

func formatElapsed(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (v *BoardView) renderCommentBox() string {
	s := v.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Nuevo comentario"),
		s.InputFocused.Render(v.commentInput.View()),
		s.TitleMuted.Render("Ctrl+S: guardar • Esc: cancelar"),
	)
}

func (v *BoardView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 60 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " ayuda")
	}
	return v.styles.Help.Render(
		fmt.Sprintf("%s nueva • %s editar • %s completar • %s timer • %s filtros • %s proyectos • %s salir",
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("c"),
			v.styles.HelpKey.Render("spc"),
			v.styles.HelpKey.Render("p/a/f"),
			v.styles.HelpKey.Render("P"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *BoardView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↑↓←→") + "   mover cursor",
		s.HelpKey.Render("H/L") + "    mover tarea de columna",
		s.HelpKey.Render("n/e/d") + "  nueva / editar / eliminar",
		s.HelpKey.Render("c") + "      completar tarea",
		s.HelpKey.Render("m") + "      comentar",
		s.HelpKey.Render("spc") + "    iniciar/pausar timer",
		s.HelpKey.Render("b/x") + "    descanso / reiniciar timer",
		s.HelpKey.Render("p/a/f") + "  filtros proyecto/persona/fecha",
		s.HelpKey.Render("o") + "      solo completadas",
		s.HelpKey.Render("v") + "      cambiar vista (tarjetas/compacta/lista/unificada)",
		s.HelpKey.Render("P/C/T") + "  proyectos / completadas / papelera",
		s.HelpKey.Render("q") + "      salir",
		"",
		s.TitleMuted.Render("Pulsa cualquier tecla para cerrar"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Atajos de teclado"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Column.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("¿Eliminar tarea?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" se moverá a la papelera.", v.deleteTargetName)),
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
