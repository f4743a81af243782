package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"devconnect/internal/auth"
	apperrors "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpsertProfileRequest represents a create-or-update profile request.
type UpsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceRequest represents a new experience entry.
type ExperienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// EducationRequest represents a new education entry.
type EducationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"field_of_study" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Me godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	profile, err := h.profileService.GetByUserID(c.Request().Context(), callerID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UpsertProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.NewValidationResponse(err))
	}

	profile, err := h.profileService.Upsert(c.Request().Context(), callerID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Social: model.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Router /profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileService.List(c.Request().Context())
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetByUser godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/user/{userId} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return httpError(c, apperrors.ErrProfileNotFound)
	}

	profile, err := h.profileService.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount godoc
// @Summary Delete the caller's account, profile and posts
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	if err := h.profileService.DeleteAccount(c.Request().Context(), callerID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user removed"})
}

// AddExperience godoc
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body ExperienceRequest true "Experience entry"
// @Success 201 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationErrorResponse
// @Router /profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	var req ExperienceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.NewValidationResponse(err))
	}

	profile, err := h.profileService.AddExperience(c.Request().Context(), callerID, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// RemoveExperience godoc
// @Summary Remove an experience entry by id
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param expId path string true "Experience entry ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/experience/{expId} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	entryID, err := uuid.Parse(c.Param("expId"))
	if err != nil {
		return httpError(c, apperrors.ErrExperienceNotFound)
	}

	profile, err := h.profileService.RemoveExperience(c.Request().Context(), callerID, entryID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body EducationRequest true "Education entry"
// @Success 201 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ValidationErrorResponse
// @Router /profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.NewValidationResponse(err))
	}

	profile, err := h.profileService.AddEducation(c.Request().Context(), callerID, service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, profile)
}

// RemoveEducation godoc
// @Summary Remove an education entry by id
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param eduId path string true "Education entry ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/education/{eduId} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	callerID, err := auth.CallerID(c)
	if err != nil {
		return unauthenticated()
	}

	entryID, err := uuid.Parse(c.Param("eduId"))
	if err != nil {
		return httpError(c, apperrors.ErrEducationNotFound)
	}

	profile, err := h.profileService.RemoveEducation(c.Request().Context(), callerID, entryID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GithubRepos godoc
// @Summary List a user's recent GitHub repositories
// @Tags profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/github/{username} [get]
func (h *ProfileHandler) GithubRepos(c echo.Context) error {
	repos, err := h.profileService.GithubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSONBlob(http.StatusOK, repos)
}
