package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobmatch/backend/api/http/presenter"
	"github.com/jobmatch/backend/pkg/job"
	"github.com/jobmatch/backend/pkg/match"
	"github.com/jobmatch/backend/pkg/resume"
)

type MatchHandler struct {
	uc match.UseCase
}

func NewMatchHandler(uc match.UseCase) *MatchHandler { return &MatchHandler{uc: uc} }

// Get returns the skill-overlap score between an owned resume and a job.
// @Summary Match score for resume and job
// @Tags    match
// @Produce json
// @Param   resumeId path string true "resume id (UUID)"
// @Param   jobId    path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} match.Score
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/{resumeId}/match/{jobId} [get]
func (h *MatchHandler) Get(c *fiber.Ctx) error {
	ident, ok := callerIdentity(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid token")
	}
	resumeID, err := uuid.Parse(c.Params("resumeId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}

	score, err := h.uc.Get(c.Context(), ident.UserID, resumeID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Resume not found")
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}
	return presenter.JSON(c, http.StatusOK, score)
}
