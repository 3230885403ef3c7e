package handler

import (
	"log/slog"
	"net/http"

	"jobmatch/internal/delivery/http/response"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler serves the precomputed rankings produced by the background
// generation path.
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// GetMatchesRequest represents the query parameters for match retrieval
type GetMatchesRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// GetJobMatches handles retrieving the persisted ranking for a posting.
// Only the posting's employer may read it.
func (h *MatchHandler) GetJobMatches(c echo.Context) error {
	callerID, ok := getUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	var req GetMatchesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
	}

	page, err := h.matchUC.GetMatchesForJob(
		c.Request().Context(),
		callerID,
		jobID,
		pageOrDefault(req.Page),
		pageSizeOrDefault(req.PageSize),
	)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Matches retrieved successfully")
}
