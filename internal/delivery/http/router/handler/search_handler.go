package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"jobmatch/internal/delivery/http/response"
	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// SearchHandler holds dependencies for the synchronous search endpoints
type SearchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// SearchCandidatesRequest represents the query parameters for candidate search
type SearchCandidatesRequest struct {
	Latitude      float64  `query:"latitude" validate:"min=-90,max=90"`
	Longitude     float64  `query:"longitude" validate:"min=-180,max=180"`
	RadiusKm      *float64 `query:"radius_km"`
	SkillIDs      string   `query:"skill_ids"` // comma-separated skill UUIDs
	RequiredYears *float64 `query:"required_years" validate:"omitempty,min=0"`
	OfferedSalary *float64 `query:"offered_salary" validate:"omitempty,min=0"`
	Availability  string   `query:"availability"`
	VerifiedOnly  bool     `query:"verified_only"`
	Page          int      `query:"page"`
	PageSize      int      `query:"page_size"`
}

// SearchJobsRequest represents the query parameters for job search
type SearchJobsRequest struct {
	Latitude  float64  `query:"latitude" validate:"min=-90,max=90"`
	Longitude float64  `query:"longitude" validate:"min=-180,max=180"`
	RadiusKm  *float64 `query:"radius_km"`
	JobType   string   `query:"job_type"`
	MinSalary *float64 `query:"min_salary" validate:"omitempty,min=0"`
	Keyword   string   `query:"keyword"`
	Page      int      `query:"page"`
	PageSize  int      `query:"page_size"`
}

// SearchCandidates handles the employer-side candidate search
func (h *SearchHandler) SearchCandidates(c echo.Context) error {
	callerID, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SearchCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	skillIDs, err := parseSkillIDs(req.SkillIDs)
	if err != nil {
		return response.BadRequest(c, "INVALID_SKILL_IDS", "skill_ids must be comma-separated UUIDs")
	}

	var availability *entity.Availability
	if req.Availability != "" {
		parsed := entity.Availability(req.Availability)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_AVAILABILITY", "Unknown availability value")
		}
		availability = &parsed
	}

	input := &usecase.SearchCandidatesInput{
		CallerID:         callerID,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		RadiusKm:         req.RadiusKm,
		RequiredSkillIDs: skillIDs,
		RequiredYears:    req.RequiredYears,
		OfferedSalary:    req.OfferedSalary,
		Availability:     availability,
		VerifiedOnly:     req.VerifiedOnly,
		Page:             pageOrDefault(req.Page),
		PageSize:         pageSizeOrDefault(req.PageSize),
	}

	page, err := h.matchUC.SearchCandidates(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Candidates retrieved successfully")
}

// SearchJobs handles the seeker-side job search
func (h *SearchHandler) SearchJobs(c echo.Context) error {
	callerID, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SearchJobsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var jobType *entity.JobType
	if req.JobType != "" {
		parsed := entity.JobType(req.JobType)
		if !parsed.IsValid() {
			return response.BadRequest(c, "INVALID_JOB_TYPE", "Unknown job type value")
		}
		jobType = &parsed
	}

	input := &usecase.SearchJobsInput{
		CallerID:  callerID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
		JobType:   jobType,
		MinSalary: req.MinSalary,
		Keyword:   req.Keyword,
		Page:      pageOrDefault(req.Page),
		PageSize:  pageSizeOrDefault(req.PageSize),
	}

	page, err := h.matchUC.SearchJobs(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Jobs retrieved successfully")
}

// parseSkillIDs parses a comma-separated UUID list. An empty string means no filter.
func parseSkillIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func pageOrDefault(page int) int {
	if page == 0 {
		return defaultPage
	}

	return page
}

func pageSizeOrDefault(pageSize int) int {
	if pageSize == 0 {
		return defaultPageSize
	}

	return pageSize
}

// getUserID extracts the authenticated user ID from the context
func getUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// handleAppError maps application errors to the unified response shape
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
