package handlers

import (
	"errors"
	"net/http"

	"github.com/gestorai/gestorai/internal/dtos"
	"github.com/gestorai/gestorai/internal/services/task_services"
)

// maxUploadSize bounds CSV imports.
const maxUploadSize = 10 << 20

type TaskHandler struct {
	taskService *task_services.TaskService
	logger      Logger
}

func NewTaskHandler(taskService *task_services.TaskService, logger Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dtos.TaskCreateRequestDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "O corpo da requisição não é um JSON válido.", http.StatusBadRequest)
		return
	}

	created, err := h.taskService.CreateTask(r.Context(), identity(r).UserID, req.Title)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Tarefa criada com sucesso!",
		"data":    created,
	})
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context(), identity(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// ImportTasks handles POST /api/import-tasks with a multipart "file" field.
func (h *TaskHandler) ImportTasks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, "Arquivo muito grande.", http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, "Nenhum arquivo enviado.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imported, err := h.taskService.ImportCSV(r.Context(), identity(r).UserID, file)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Planilha importada com sucesso!",
		"imported": imported,
	})
}

// ExportTasks handles GET /api/export-tasks.
func (h *TaskHandler) ExportTasks(w http.ResponseWriter, r *http.Request) {
	data, err := h.taskService.ExportCSV(r.Context(), identity(r).UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+task_services.ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
