package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobmatch/backend/api/http/presenter"
	"github.com/jobmatch/backend/pkg/resume"
)

type ResumesHandler struct {
	uc       resume.UseCase
	maxBytes int64
}

func NewResumesHandler(uc resume.UseCase) *ResumesHandler {
	return &ResumesHandler{
		uc:       uc,
		maxBytes: 15 << 20, // 15MB
	}
}

// Upload stores a resume document and extracts its keyword set.
// @Summary Upload resume
// @Description Accepts PDF/Word/plain text, stores the document and extracts keywords.
// @Tags        resumes
// @Accept      multipart/form-data
// @Produce     json
// @Param       resume formData file true "resume document"
// @Security    BearerAuth
// @Success     201 {object} resume.Resume
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     429 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	ident, ok := callerIdentity(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid token")
	}
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "no file uploaded")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, "file too large")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil || int64(len(data)) > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, "failed to read uploaded file")
	}

	res, err := h.uc.Upload(c.Context(), ident.UserID, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedType) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save resume")
	}
	return presenter.JSON(c, http.StatusCreated, res)
}

// List returns the caller's resumes.
// @Summary List resumes
// @Tags    resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes [get]
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	ident, ok := callerIdentity(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid token")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.uc.List(c.Context(), ident.UserID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one of the caller's resumes.
// @Summary Get resume
// @Tags    resumes
// @Produce json
// @Param   id path string true "resume id (UUID)"
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	ident, ok := callerIdentity(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid token")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	res, err := h.uc.Get(c.Context(), ident.UserID, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Resume not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
