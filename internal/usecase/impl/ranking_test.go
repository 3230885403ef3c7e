package impl

import (
	"testing"

	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchResult(score, distance float64, verified bool) *entity.MatchResult {
	return &entity.MatchResult{
		CounterpartID: uuid.New(),
		DistanceKm:    distance,
		Score:         score,
		Verified:      verified,
	}
}

func TestSortMatches_ScoreDescending(t *testing.T) {
	low := matchResult(0.3, 1, false)
	high := matchResult(0.9, 9, false)
	mid := matchResult(0.6, 5, false)

	results := []*entity.MatchResult{low, high, mid}
	sortMatches(results)

	assert.Equal(t, []*entity.MatchResult{high, mid, low}, results)
}

func TestSortMatches_TieBreaksOnDistanceThenVerified(t *testing.T) {
	far := matchResult(0.5, 10, true)
	near := matchResult(0.5, 0, false)

	results := []*entity.MatchResult{far, near}
	sortMatches(results)

	// Equal scores: the closer record wins regardless of verification.
	assert.Equal(t, near, results[0])

	verified := matchResult(0.5, 3, true)
	unverified := matchResult(0.5, 3, false)

	results = []*entity.MatchResult{unverified, verified}
	sortMatches(results)

	// Equal score and distance: verified first.
	assert.Equal(t, verified, results[0])
}

func TestSortMatches_DistanceTieBreakKeepsFullPrecision(t *testing.T) {
	nearer := matchResult(0.5, 5.0041, false)
	farther := matchResult(0.5, 5.0049, false)

	results := []*entity.MatchResult{farther, nearer}
	sortMatches(results)

	// Both distances display as 5.00; the full values still decide the order.
	assert.Equal(t, nearer, results[0])
	assert.Equal(t, farther, results[1])
}

func TestSortMatches_FinalTieBreakIsIDOrder(t *testing.T) {
	a := matchResult(0.5, 3, true)
	b := matchResult(0.5, 3, true)

	first := []*entity.MatchResult{a, b}
	second := []*entity.MatchResult{b, a}
	sortMatches(first)
	sortMatches(second)

	// Identical keys up to the ID: both inputs converge on the same total order.
	assert.Equal(t, first, second)
}

func TestNormalizePageSize(t *testing.T) {
	size, err := normalizePageSize(20, 100)
	require.NoError(t, err)
	assert.Equal(t, 20, size)

	// Oversized requests clamp to the maximum.
	size, err = normalizePageSize(500, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, size)

	_, err = normalizePageSize(0, 100)
	assert.Equal(t, domainerrors.ErrInvalidPagination, err)

	_, err = normalizePageSize(-5, 100)
	assert.Equal(t, domainerrors.ErrInvalidPagination, err)
}

func TestPaginate_SlicesWithoutDuplicatesOrGaps(t *testing.T) {
	results := make([]*entity.MatchResult, 0, 25)
	for range 25 {
		results = append(results, matchResult(0.5, 1, false))
	}

	seen := make(map[uuid.UUID]bool, 25)
	for page := 1; page <= 3; page++ {
		pageResults, total, totalPages, err := paginate(results, page, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Equal(t, int64(3), totalPages)

		for _, result := range pageResults {
			assert.False(t, seen[result.CounterpartID], "row appeared on two pages")
			seen[result.CounterpartID] = true
		}
	}

	assert.Len(t, seen, 25)
}

func TestPaginate_RoundsDistanceForDisplay(t *testing.T) {
	results := []*entity.MatchResult{matchResult(0.9, 5.0049, false), matchResult(0.8, 2.006, false)}

	pageResults, _, _, err := paginate(results, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, pageResults[0].DistanceKm)
	assert.Equal(t, 2.01, pageResults[1].DistanceKm)
}

func TestPaginate_OutOfRangePageIsEmptyWithTotals(t *testing.T) {
	results := []*entity.MatchResult{matchResult(0.5, 1, false)}

	pageResults, total, totalPages, err := paginate(results, 99, 10)
	require.NoError(t, err)
	assert.Empty(t, pageResults)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), totalPages)
}

func TestPaginate_EmptyInput(t *testing.T) {
	pageResults, total, totalPages, err := paginate(nil, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, pageResults)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, int64(0), totalPages)
}

func TestPaginate_PageBelowOneIsRejected(t *testing.T) {
	_, _, _, err := paginate(nil, 0, 10)
	assert.Equal(t, domainerrors.ErrInvalidPagination, err)

	_, _, _, err = paginate(nil, -1, 10)
	assert.Equal(t, domainerrors.ErrInvalidPagination, err)
}
