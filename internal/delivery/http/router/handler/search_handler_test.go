package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"jobmatch/internal/delivery/http/validator"
	domainerrors "jobmatch/internal/domain/errors"
	mockusecase "jobmatch/internal/mocks/usecase"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

// newSearchContext builds an echo context carrying an authenticated user,
// mirroring what the auth middleware sets.
func newSearchContext(t *testing.T, path string, query url.Values, userID any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodGet, path+"?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", userID)
	}

	return c, rec
}

func TestSearchCandidates_Success(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &SearchHandler{matchUC: matchUC, logger: newTestLogger()}

	callerID := uuid.New()
	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("radius_km", "5")

	matchUC.EXPECT().
		SearchCandidates(mock.Anything, mock.MatchedBy(func(input *usecase.SearchCandidatesInput) bool {
			return input.CallerID == callerID &&
				input.Latitude == 25.03 &&
				input.RadiusKm != nil && *input.RadiusKm == 5 &&
				input.Page == defaultPage &&
				input.PageSize == defaultPageSize
		})).
		Return(&usecase.MatchPage{Results: nil, SearchRadiusUsed: 5, Page: 1, PageSize: 20}, nil).
		Once()

	c, rec := newSearchContext(t, "/search/candidates", query, callerID)
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchCandidates_MissingUserIDIsUnauthorized(t *testing.T) {
	h := &SearchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")

	c, rec := newSearchContext(t, "/search/candidates", query, nil)
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchCandidates_InvalidSkillIDs(t *testing.T) {
	h := &SearchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("skill_ids", "not-a-uuid")

	c, rec := newSearchContext(t, "/search/candidates", query, uuid.New())
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SKILL_IDS")
}

func TestSearchCandidates_InvalidAvailability(t *testing.T) {
	h := &SearchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("availability", "sometimes")

	c, rec := newSearchContext(t, "/search/candidates", query, uuid.New())
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_AVAILABILITY")
}

func TestSearchCandidates_OutOfRangeLatitudeFailsValidation(t *testing.T) {
	h := &SearchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "91")
	query.Set("longitude", "121.56")

	c, rec := newSearchContext(t, "/search/candidates", query, uuid.New())
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchCandidates_AppErrorIsMapped(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &SearchHandler{matchUC: matchUC, logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("radius_km", "-1")

	matchUC.EXPECT().
		SearchCandidates(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidRadius).
		Once()

	c, rec := newSearchContext(t, "/search/candidates", query, uuid.New())
	require.NoError(t, h.SearchCandidates(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_RADIUS")
}

func TestSearchJobs_Success(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &SearchHandler{matchUC: matchUC, logger: newTestLogger()}

	callerID := uuid.New()
	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("job_type", "full_time")
	query.Set("keyword", "cook")
	query.Set("page", "2")
	query.Set("page_size", "10")

	matchUC.EXPECT().
		SearchJobs(mock.Anything, mock.MatchedBy(func(input *usecase.SearchJobsInput) bool {
			return input.CallerID == callerID &&
				input.JobType != nil && string(*input.JobType) == "full_time" &&
				input.Keyword == "cook" &&
				input.Page == 2 &&
				input.PageSize == 10
		})).
		Return(&usecase.MatchPage{Page: 2, PageSize: 10}, nil).
		Once()

	c, rec := newSearchContext(t, "/search/jobs", query, callerID)
	require.NoError(t, h.SearchJobs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchJobs_InvalidJobType(t *testing.T) {
	h := &SearchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	query := url.Values{}
	query.Set("latitude", "25.03")
	query.Set("longitude", "121.56")
	query.Set("job_type", "gig")

	c, rec := newSearchContext(t, "/search/jobs", query, uuid.New())
	require.NoError(t, h.SearchJobs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_JOB_TYPE")
}

func TestGetJobMatches_Success(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &MatchHandler{matchUC: matchUC, logger: newTestLogger()}

	callerID := uuid.New()
	jobID := uuid.New()

	matchUC.EXPECT().
		GetMatchesForJob(mock.Anything, callerID, jobID, defaultPage, defaultPageSize).
		Return(&usecase.MatchPage{Page: 1, PageSize: 20}, nil).
		Once()

	c, rec := newSearchContext(t, "/jobs/"+jobID.String()+"/matches", url.Values{}, callerID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	require.NoError(t, h.GetJobMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetJobMatches_InvalidJobID(t *testing.T) {
	h := &MatchHandler{matchUC: mockusecase.NewMockMatchUsecase(t), logger: newTestLogger()}

	c, rec := newSearchContext(t, "/jobs/abc/matches", url.Values{}, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetJobMatches(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestGetJobMatches_ForbiddenForOtherEmployer(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &MatchHandler{matchUC: matchUC, logger: newTestLogger()}

	callerID := uuid.New()
	jobID := uuid.New()

	matchUC.EXPECT().
		GetMatchesForJob(mock.Anything, callerID, jobID, defaultPage, defaultPageSize).
		Return(nil, domainerrors.ErrForbidden).
		Once()

	c, rec := newSearchContext(t, "/jobs/"+jobID.String()+"/matches", url.Values{}, callerID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	require.NoError(t, h.GetJobMatches(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetJobMatches_PaginationPassedThrough(t *testing.T) {
	matchUC := mockusecase.NewMockMatchUsecase(t)
	h := &MatchHandler{matchUC: matchUC, logger: newTestLogger()}

	callerID := uuid.New()
	jobID := uuid.New()

	query := url.Values{}
	query.Set("page", strconv.Itoa(3))
	query.Set("page_size", strconv.Itoa(25))

	matchUC.EXPECT().
		GetMatchesForJob(mock.Anything, callerID, jobID, 3, 25).
		Return(&usecase.MatchPage{Page: 3, PageSize: 25}, nil).
		Once()

	c, rec := newSearchContext(t, "/jobs/"+jobID.String()+"/matches", query, callerID)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	require.NoError(t, h.GetJobMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
