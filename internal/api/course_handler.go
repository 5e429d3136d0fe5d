package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/demo-api/internal/api/shared"
	"github.com/phrazzld/demo-api/internal/domain"
	"github.com/phrazzld/demo-api/internal/platform/logger"
	"github.com/phrazzld/demo-api/internal/store"
)

const courseHandlerComponent = "course_handler"

// CourseHandler serves the /courses resource.
type CourseHandler struct {
	courseStore store.CourseStore
	logger      *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseStore store.CourseStore, logger *slog.Logger) *CourseHandler {
	if courseStore == nil {
		// ALLOW-PANIC: constructor wiring error
		panic("courseStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		courseStore: courseStore,
		logger:      logger,
	}
}

// List handles GET /courses.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseStore.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, courses)
}

// Get handles GET /courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	course, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// Create handles POST /courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var course domain.Course
	if err := decodeAndValidate(r, &course); err != nil {
		HandleError(w, r, err)
		return
	}
	// identities are always assigned by the store
	course.ID = 0

	if err := h.courseStore.Create(r.Context(), &course); err != nil {
		HandleError(w, r, err)
		return
	}

	logger.ForComponent(r.Context(), h.logger, courseHandlerComponent).
		Debug("course created", slog.Int64("course_id", course.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, &course)
}

// Update handles PUT /courses/{id}. Every mutable field is replaced.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var in domain.Course
	if err := decodeAndValidate(r, &in); err != nil {
		HandleError(w, r, err)
		return
	}

	existing, err := h.courseStore.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	existing.ApplyUpdate(&in)
	if err := h.courseStore.Update(r.Context(), existing); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, existing)
}

// Delete handles DELETE /courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	exists, err := h.courseStore.Exists(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	if !exists {
		HandleError(w, r, store.ErrCourseNotFound)
		return
	}

	if err := h.courseStore.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondNoContent(w)
}
