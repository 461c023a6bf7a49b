package handlers

import (
	"net/http"
	"strings"
	"time"

	"internmatch/internal/app"
	"internmatch/internal/common"
	"internmatch/internal/domain/application"
	"internmatch/internal/domain/job"
	"internmatch/internal/http/middleware"
	"internmatch/internal/http/response"
)

type JobHandler struct {
	jobs        *app.JobService
	matcher     *app.MatchService
	assignments *app.AssignmentService
	limiter     middleware.Limiter
}

func NewJobHandler(jobs *app.JobService, matcher *app.MatchService, assignments *app.AssignmentService, limiter middleware.Limiter) *JobHandler {
	return &JobHandler{jobs: jobs, matcher: matcher, assignments: assignments, limiter: limiter}
}

type createJobRequest struct {
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	Requirements        string   `json:"requirements"`
	LogoURL             string   `json:"logoUrl"`
	Status              string   `json:"status"`
	RequiredAssignments []string `json:"requiredAssignments"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Type:                req.Type,
		Description:         req.Description,
		Requirements:        req.Requirements,
		LogoURL:             req.LogoURL,
		RecruiterID:         recruiterID,
		Status:              job.Status(req.Status),
		RequiredAssignments: req.RequiredAssignments,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Matches serves the ranked open-job list for the session student.
func (h *JobHandler) Matches(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	matches, err := h.matcher.ComputeMatches(r.Context(), studentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, matches)
}

// Apply is the public boundary that enforces the assignment eligibility
// gate before handing off to the application manager, which itself only
// checks existence and the duplicate constraint.
func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + studentID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	target, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	eligible, missing, err := h.assignments.MeetsRequirements(r.Context(), studentID, target.RequiredAssignments)
	if err != nil {
		response.Error(w, err)
		return
	}
	if !eligible {
		response.Error(w, common.NewValidationError("required assignments not completed", map[string]string{
			"requiredAssignments": "complete assignments for: " + strings.Join(missing, ", "),
		}))
		return
	}
	created, err := h.jobs.Apply(r.Context(), studentID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

type hasAppliedResponse struct {
	Applied bool `json:"applied"`
}

func (h *JobHandler) HasApplied(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	applied, err := h.jobs.HasApplied(r.Context(), studentID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, hasAppliedResponse{Applied: applied})
}

func (h *JobHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	target, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if target.RecruiterID != recruiterID {
		response.Error(w, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil))
		return
	}
	items, err := h.jobs.ListApplications(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) ListByRecruiter(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByRecruiter(r.Context(), recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type updateApplicationRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	update := application.Update{}
	if req.Status != "" {
		status := application.Status(req.Status)
		update.Status = &status
	}
	updated, err := h.jobs.UpdateApplication(r.Context(), applicationID, update)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
