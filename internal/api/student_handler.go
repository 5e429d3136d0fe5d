package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/store"
)

const studentHandlerComponent = "student_handler"

// StudentHandler serves the /students resource.
type StudentHandler struct {
	studentStore store.StudentStore
	logger       *slog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentStore store.StudentStore, logger *slog.Logger) *StudentHandler {
	if studentStore == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("studentStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentHandler{
		studentStore: studentStore,
		logger:       logger,
	}
}

// List handles GET /students.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentStore.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, students)
}

// Get handles GET /students/{id}.
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	student, err := h.studentStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, student)
}

// Create handles POST /students.
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var student domain.Student
	if err := decodeAndValidate(r, &student); err != nil {
		HandleError(w, r, err)
		return
	}
	student.ID = 0

	if err := h.studentStore.Create(r.Context(), &student); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, &student)
}

// Update handles PUT /students/{id}. Every mutable field is replaced.
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var in domain.Student
	if err := decodeAndValidate(r, &in); err != nil {
		HandleError(w, r, err)
		return
	}

	existing, err := h.studentStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	existing.ApplyUpdate(&in)
	if err := h.studentStore.Update(r.Context(), existing); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, existing)
}

// Delete handles DELETE /students/{id}.
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	exists, err := h.studentStore.Exists(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !exists {
		HandleError(w, r, store.ErrStudentNotFound)
		return
	}

	if err := h.studentStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}
	logger.ForComponent(r.Context(), h.logger, studentHandlerComponent).
		Info("student removed", slog.Int64("student_id", id))
	shared.RespondNoContent(w)
}
