package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobmatch/backend/api/http/presenter"
	"github.com/jobmatch/backend/pkg/job"
)

type JobsHandler struct {
	uc job.UseCase
}

func NewJobsHandler(uc job.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

type createJobRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Salary      string   `json:"salary"`
}

// Create adds a job posting.
// @Summary Create job posting
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body createJobRequest true "job posting"
// @Security BearerAuth
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.Create(c.Context(), job.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Skills:      req.Skills,
		Salary:      req.Salary,
	})
	if err != nil {
		var verr job.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create job")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// Search finds jobs matching any of the given keywords.
// @Summary Search jobs
// @Tags    jobs
// @Produce json
// @Param   q query string false "space-separated keywords"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /jobs/search [get]
func (h *JobsHandler) Search(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	keywords := strings.Fields(c.Query("q"))
	jobs, err := h.uc.Search(c.Context(), keywords, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"jobs": jobs})
}

// Get returns a job posting by id.
// @Summary Get job posting
// @Tags    jobs
// @Produce json
// @Param   id path string true "job id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	j, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"job": j})
}
