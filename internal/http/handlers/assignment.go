package handlers

import (
	"net/http"
	"time"

	"internmatch/internal/app"
	"internmatch/internal/common"
	"internmatch/internal/domain/assignment"
	"internmatch/internal/http/middleware"
	"internmatch/internal/http/response"
)

type AssignmentHandler struct {
	assignments *app.AssignmentService
	limiter     middleware.Limiter
}

func NewAssignmentHandler(assignments *app.AssignmentService, limiter middleware.Limiter) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, limiter: limiter}
}

// List returns the session student's assignment view: persisted records
// plus a not-started placeholder per untouched template.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.assignments.ListForStudent(r.Context(), studentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *AssignmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	assignmentID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	record, err := h.assignments.Start(r.Context(), studentID, assignmentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, record)
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
	JobIDs  []common.ID       `json:"jobIds"`
}

func (h *AssignmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	assignmentID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if len(req.JobIDs) == 0 {
		response.Error(w, common.NewValidationError("invalid submission", map[string]string{"jobIds": "at least one target job is required"}))
		return
	}
	if h.limiter != nil {
		key := "submit:" + assignmentID.String() + ":" + studentID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "submit rate limit exceeded", nil))
			return
		}
	}
	record, err := h.assignments.Submit(r.Context(), studentID, assignmentID, req.Answers, req.JobIDs)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, record)
}

type reviewRequest struct {
	StudentID common.ID `json:"studentId"`
	Feedback  string    `json:"feedback"`
}

// Review attaches recruiter feedback to the submission a student aimed
// at one of the recruiter's jobs.
func (h *AssignmentHandler) Review(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	assignmentID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.StudentID.IsZero() {
		response.Error(w, common.NewValidationError("invalid review", map[string]string{"studentId": "studentId is required"}))
		return
	}
	if err := h.assignments.ReviewSubmission(r.Context(), req.StudentID, assignmentID, jobID, assignment.Review{Feedback: req.Feedback}); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
