// Package i18n maps failed board actions to the single user-visible error
// message shown by the UI. Messages exist in Spanish (the team's working
// language) and English.
package i18n

// Action identifies the operation a message describes
type Action string

const (
	ActionLoad             Action = "load"
	ActionLoadCompleted    Action = "load_completed"
	ActionLoadDeleted      Action = "load_deleted"
	ActionCreateTask       Action = "create_task"
	ActionUpdateTask       Action = "update_task"
	ActionUpdateStatus     Action = "update_status"
	ActionCompleteTask     Action = "complete_task"
	ActionDeleteTask       Action = "delete_task"
	ActionRestoreTask      Action = "restore_task"
	ActionPermanentDelete  Action = "permanent_delete"
	ActionSaveComment      Action = "save_comment"
	ActionSaveSession      Action = "save_session"
	ActionCreateProject    Action = "create_project"
	ActionUpdateProject    Action = "update_project"
	ActionDeleteProject    Action = "delete_project"
	ActionReorderProjects  Action = "reorder_projects"
	ActionCreateColumn     Action = "create_column"
	ActionUpdateColumn     Action = "update_column"
	ActionDeleteColumn     Action = "delete_column"
	ActionProjectRequired  Action = "project_required"
	ActionTitleRequired    Action = "title_required"
	ActionUnknownStatus    Action = "unknown_status"
	ActionDefaultColumn    Action = "default_column"
	ActionTooManyImages    Action = "too_many_images"
	ActionUnknownAssignee  Action = "unknown_assignee"
	ActionDuplicateStatus  Action = "duplicate_status"
	ActionProjectNotFound  Action = "project_not_found"
)

var spanish = map[Action]string{
	ActionLoad:            "Error al cargar datos.",
	ActionLoadCompleted:   "Error al cargar tareas completadas.",
	ActionLoadDeleted:     "Error al cargar tareas eliminadas.",
	ActionCreateTask:      "Error al crear la tarea.",
	ActionUpdateTask:      "Error al actualizar la tarea.",
	ActionUpdateStatus:    "Error al actualizar el estado de la tarea.",
	ActionCompleteTask:    "Error al completar la tarea.",
	ActionDeleteTask:      "Error al eliminar la tarea.",
	ActionRestoreTask:     "Error al restaurar la tarea.",
	ActionPermanentDelete: "Error al eliminar permanentemente la tarea.",
	ActionSaveComment:     "Error al guardar el comentario.",
	ActionSaveSession:     "Error al guardar sesión de pomodoro.",
	ActionCreateProject:   "Error al crear el proyecto.",
	ActionUpdateProject:   "Error al actualizar el proyecto.",
	ActionDeleteProject:   "Error al eliminar el proyecto.",
	ActionReorderProjects: "Error al reordenar proyectos.",
	ActionCreateColumn:    "Error al crear la columna.",
	ActionUpdateColumn:    "Error al actualizar la columna.",
	ActionDeleteColumn:    "Error al eliminar la columna.",
	ActionProjectRequired: "Selecciona un proyecto antes de crear la tarea.",
	ActionTitleRequired:   "El título es requerido.",
	ActionUnknownStatus:   "El estado no corresponde a ninguna columna.",
	ActionDefaultColumn:   "Las columnas predeterminadas no se pueden eliminar.",
	ActionTooManyImages:   "Máximo 5 imágenes por tarea.",
	ActionUnknownAssignee: "El miembro asignado no existe.",
	ActionDuplicateStatus: "Ya existe una columna con ese estado.",
	ActionProjectNotFound: "El proyecto no existe.",
}

var english = map[Action]string{
	ActionLoad:            "Failed to load data.",
	ActionLoadCompleted:   "Failed to load completed tasks.",
	ActionLoadDeleted:     "Failed to load deleted tasks.",
	ActionCreateTask:      "Failed to create the task.",
	ActionUpdateTask:      "Failed to update the task.",
	ActionUpdateStatus:    "Failed to update the task status.",
	ActionCompleteTask:    "Failed to complete the task.",
	ActionDeleteTask:      "Failed to delete the task.",
	ActionRestoreTask:     "Failed to restore the task.",
	ActionPermanentDelete: "Failed to permanently delete the task.",
	ActionSaveComment:     "Failed to save the comment.",
	ActionSaveSession:     "Failed to save the pomodoro session.",
	ActionCreateProject:   "Failed to create the project.",
	ActionUpdateProject:   "Failed to update the project.",
	ActionDeleteProject:   "Failed to delete the project.",
	ActionReorderProjects: "Failed to reorder projects.",
	ActionCreateColumn:    "Failed to create the column.",
	ActionUpdateColumn:    "Failed to update the column.",
	ActionDeleteColumn:    "Failed to delete the column.",
	ActionProjectRequired: "Select a project before creating the task.",
	ActionTitleRequired:   "A title is required.",
	ActionUnknownStatus:   "The status does not match any column.",
	ActionDefaultColumn:   "Default columns cannot be deleted.",
	ActionTooManyImages:   "At most 5 images per task.",
	ActionUnknownAssignee: "The assigned member does not exist.",
	ActionDuplicateStatus: "A column with that status already exists.",
	ActionProjectNotFound: "The project does not exist.",
}

// Catalog resolves actions to messages for one locale
type Catalog struct {
	messages map[Action]string
}

// New returns a catalog for "es" or "en"; unknown locales fall back to
// Spanish, matching the original product
func New(locale string) *Catalog {
	if locale == "en" {
		return &Catalog{messages: english}
	}
	return &Catalog{messages: spanish}
}

// Message returns the user-visible text for an action
func (c *Catalog) Message(a Action) string {
	if m, ok := c.messages[a]; ok {
		return m
	}
	return c.messages[ActionLoad]
}
